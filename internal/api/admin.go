package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hmse-unipi/portal/internal/model"
)

type AdminService struct{ c *Client }

func (s *AdminService) Users(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := s.c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) User(ctx context.Context, id int) (*model.User, error) {
	var out model.User
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id int, u *model.User) error {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", id), nil, u, nil)
}

func (s *AdminService) DeleteUser(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil, nil)
}

func (s *AdminService) SetRole(ctx context.Context, id int, role model.Role) error {
	in := map[string]model.Role{"role": role}
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/role", id), nil, in, nil)
}

func (s *AdminService) SalesReport(ctx context.Context, params url.Values) (*model.SalesReport, error) {
	var out model.SalesReport
	if err := s.c.do(ctx, http.MethodGet, "/admin/reports/sales", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) EventReport(ctx context.Context) ([]model.EventReport, error) {
	var out []model.EventReport
	if err := s.c.do(ctx, http.MethodGet, "/admin/reports/events", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
