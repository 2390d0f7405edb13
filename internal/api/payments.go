package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/hmse-unipi/portal/internal/model"
)

type PaymentService struct{ c *Client }

// SubmitProof uploads the transfer receipt for a registration as the
// multipart field "proof".
func (s *PaymentService) SubmitProof(ctx context.Context, registrationID int, filename string, proof io.Reader) error {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	part, err := mw.CreateFormFile("proof", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, proof); err != nil {
		return fmt.Errorf("read proof: %w", err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	path := fmt.Sprintf("/payments/registrations/%d/proof", registrationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.url(path, nil), buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return s.c.send(req, nil)
}

func (s *PaymentService) Mine(ctx context.Context) ([]model.Payment, error) {
	var out []model.Payment
	if err := s.c.do(ctx, http.MethodGet, "/payments/my-payments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PaymentService) Pending(ctx context.Context) ([]model.Payment, error) {
	var out []model.Payment
	if err := s.c.do(ctx, http.MethodGet, "/payments/pending", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PaymentService) Confirm(ctx context.Context, registrationID int, in model.Confirmation) error {
	path := fmt.Sprintf("/payments/registrations/%d/confirm", registrationID)
	return s.c.do(ctx, http.MethodPost, path, nil, in, nil)
}
