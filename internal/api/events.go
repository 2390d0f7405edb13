package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hmse-unipi/portal/internal/model"
)

type EventService struct{ c *Client }

func (s *EventService) List(ctx context.Context, params url.Values) ([]model.Event, error) {
	var out []model.Event
	if err := s.c.do(ctx, http.MethodGet, "/events", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EventService) Get(ctx context.Context, id int) (*model.Event, error) {
	var out model.Event
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EventService) Create(ctx context.Context, e *model.Event) error {
	return s.c.do(ctx, http.MethodPost, "/events", nil, e, nil)
}

func (s *EventService) Update(ctx context.Context, id int, e *model.Event) error {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), nil, e, nil)
}

func (s *EventService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil, nil)
}

// Register signs the current user up for an event.
func (s *EventService) Register(ctx context.Context, eventID int) (*model.Registration, error) {
	var out model.Registration
	if err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/register", eventID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
