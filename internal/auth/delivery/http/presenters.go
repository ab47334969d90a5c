package http

import (
	"time"

	"personal-task-management/internal/auth"
	"personal-task-management/internal/model"
)

// --- Request DTOs ---

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type signupReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
	Name     string `json:"name"     binding:"required,max=255"`
}

func (r signupReq) toInput() auth.SignupInput {
	return auth.SignupInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u *model.User) *userResp {
	if u == nil {
		return nil
	}
	return &userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type sessionResp struct {
	User            *userResp `json:"user"`
	IsAuthenticated bool      `json:"is_authenticated"`
	Token           string    `json:"token,omitempty"`
}

func (h *handler) newSessionResp(out auth.SessionOutput) sessionResp {
	return sessionResp{
		User:            newUserResp(out.User),
		IsAuthenticated: out.Authenticated,
		Token:           out.Token,
	}
}
