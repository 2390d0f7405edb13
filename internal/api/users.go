package api

import (
	"context"
	"net/http"

	"github.com/hmse-unipi/portal/internal/model"
)

type UserService struct{ c *Client }

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *UserService) Profile(ctx context.Context) (*model.User, error) {
	var out model.User
	if err := s.c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, u *model.User) error {
	return s.c.do(ctx, http.MethodPut, "/users/profile", nil, u, nil)
}

func (s *UserService) ChangePassword(ctx context.Context, in PasswordChange) error {
	return s.c.do(ctx, http.MethodPut, "/users/change-password", nil, in, nil)
}

// MyEvents lists the events the current user registered for, with
// registration and payment status.
func (s *UserService) MyEvents(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := s.c.do(ctx, http.MethodGet, "/users/events", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
