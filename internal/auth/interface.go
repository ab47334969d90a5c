package auth

import "context"

// UseCase tracks at most one authenticated identity at a time. Login and
// Signup reproduce the mock contract: they suspend briefly and then succeed
// unconditionally, with no credential verification.
type UseCase interface {
	// Login synthesizes a user from the submitted email, marks the session
	// authenticated, and returns a signed session token.
	Login(ctx context.Context, input LoginInput) (SessionOutput, error)

	// Signup creates a new user with the given name and a fresh id, marks the
	// session authenticated, and returns a signed session token.
	Signup(ctx context.Context, input SignupInput) (SessionOutput, error)

	// Logout clears the current user and authenticated flag synchronously.
	Logout(ctx context.Context) error

	// Session reports the current session state, rehydrated from the
	// persisted record at startup.
	Session(ctx context.Context) (SessionOutput, error)
}
