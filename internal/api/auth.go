package api

import (
	"context"
	"net/http"

	"github.com/hmse-unipi/portal/internal/model"
)

type AuthService struct{ c *Client }

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is stored verbatim in the session.
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, in Credentials) (*LoginResult, error) {
	var out LoginResult
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Register(ctx context.Context, in Registration) error {
	return s.c.do(ctx, http.MethodPost, "/auth/register", nil, in, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return s.c.do(ctx, http.MethodPost, "/auth/reset-password", nil, in, nil)
}
