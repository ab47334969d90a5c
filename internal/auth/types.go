package auth

import "personal-task-management/internal/model"

// LoginInput carries the submitted credentials. The password is accepted but
// never verified in this mock contract.
type LoginInput struct {
	Email    string
	Password string
}

// SignupInput carries the new account fields.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// SessionOutput is the session state. User is nil when unauthenticated.
// Token is set only by Login and Signup.
type SessionOutput struct {
	User          *model.User
	Authenticated bool
	Token         string
}
