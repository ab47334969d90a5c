package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-task-management/internal/auth"
	"personal-task-management/internal/auth/repository"
	"personal-task-management/internal/model"
)

// Login suspends for the configured latency and then unconditionally
// succeeds, synthesizing the user from the submitted email. The password is
// not verified: this reproduces the mock auth contract.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.SessionOutput, error) {
	if err := uc.suspend(ctx); err != nil {
		return auth.SessionOutput{}, err
	}

	user := &model.User{
		ID:        uc.ids.New(),
		Email:     input.Email,
		Name:      nameFromEmail(input.Email),
		CreatedAt: time.Now(),
	}

	return uc.establish(ctx, user)
}

// Signup behaves like Login but keeps the submitted display name.
func (uc *implUseCase) Signup(ctx context.Context, input auth.SignupInput) (auth.SessionOutput, error) {
	if err := uc.suspend(ctx); err != nil {
		return auth.SessionOutput{}, err
	}

	user := &model.User{
		ID:        uc.ids.New(),
		Email:     input.Email,
		Name:      input.Name,
		CreatedAt: time.Now(),
	}

	return uc.establish(ctx, user)
}

// Logout clears the session synchronously.
func (uc *implUseCase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	uc.user = nil
	uc.authenticated = false
	uc.mu.Unlock()

	uc.persist(ctx, repository.Record{})
	uc.l.Infof(ctx, "session cleared")
	return nil
}

// Session reports the current session state.
func (uc *implUseCase) Session(ctx context.Context) (auth.SessionOutput, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return auth.SessionOutput{
		User:          uc.user,
		Authenticated: uc.authenticated,
	}, nil
}

func (uc *implUseCase) establish(ctx context.Context, user *model.User) (auth.SessionOutput, error) {
	token, err := uc.tokens.IssueToken(user.ID)
	if err != nil {
		return auth.SessionOutput{}, fmt.Errorf("issue session token: %w", err)
	}

	uc.mu.Lock()
	uc.user = user
	uc.authenticated = true
	uc.mu.Unlock()

	uc.persist(ctx, repository.Record{User: user, IsAuthenticated: true})
	uc.l.Infof(ctx, "session established for %s", user.Email)

	return auth.SessionOutput{
		User:          user,
		Authenticated: true,
		Token:         token,
	}, nil
}

// nameFromEmail derives a display name from the local part of the email.
func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
