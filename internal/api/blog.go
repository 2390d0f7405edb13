package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hmse-unipi/portal/internal/model"
)

type BlogCategoryService struct{ c *Client }

// List unwraps the {"data": [...]} envelope the categories endpoint uses.
func (s *BlogCategoryService) List(ctx context.Context) ([]model.BlogCategory, error) {
	var out struct {
		Data []model.BlogCategory `json:"data"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/blog-categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *BlogCategoryService) Get(ctx context.Context, id int) (*model.BlogCategory, error) {
	var out model.BlogCategory
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/blog-categories/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *BlogCategoryService) Create(ctx context.Context, in *model.BlogCategory) error {
	return s.c.do(ctx, http.MethodPost, "/blog-categories", nil, in, nil)
}

func (s *BlogCategoryService) Update(ctx context.Context, id int, in *model.BlogCategory) error {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/blog-categories/%d", id), nil, in, nil)
}

func (s *BlogCategoryService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/blog-categories/%d", id), nil, nil, nil)
}

type BlogService struct{ c *Client }

func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	var out []model.Blog
	if err := s.c.do(ctx, http.MethodGet, "/blogs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BlogService) Get(ctx context.Context, id int) (*model.Blog, error) {
	var out model.Blog
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/blogs/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *BlogService) ByCategory(ctx context.Context, categoryID int) ([]model.Blog, error) {
	var out []model.Blog
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/blogs/category/%d", categoryID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BlogService) Create(ctx context.Context, in *model.Blog) error {
	return s.c.do(ctx, http.MethodPost, "/blogs", nil, in, nil)
}

func (s *BlogService) Update(ctx context.Context, id int, in *model.Blog) error {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/blogs/%d", id), nil, in, nil)
}

func (s *BlogService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/blogs/%d", id), nil, nil, nil)
}
