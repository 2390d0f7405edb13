// Package api is the client for the events platform REST API. Every
// business rule lives behind it; the portal only forwards calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hmse-unipi/portal/internal/config"
)

type tokenKey struct{}

// WithToken attaches the bearer token used by calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey{}).(string)
	return t
}

// Error is a non-2xx API response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether the API rejected the credential.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusUnauthorized
}

// Message is the text to show a user for err, falling back to def.
func Message(err error, def string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return def
}

type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger

	Auth           *AuthService
	Events         *EventService
	Users          *UserService
	Payments       *PaymentService
	Admin          *AdminService
	BlogCategories *BlogCategoryService
	Blogs          *BlogService
}

type Params struct {
	fx.In

	Log    *zap.Logger
	Config *config.Config
}

func New(p Params) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(p.Config.API.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}

	c := &Client{
		base: base,
		http: &http.Client{Timeout: p.Config.API.Timeout},
		log:  p.Log,
	}
	c.Auth = &AuthService{c}
	c.Events = &EventService{c}
	c.Users = &UserService{c}
	c.Payments = &PaymentService{c}
	c.Admin = &AdminService{c}
	c.BlogCategories = &BlogCategoryService{c}
	c.Blogs = &BlogService{c}

	return c, nil
}

func (c *Client) url(path string, query url.Values) string {
	u := c.base.ResolveReference(&url.URL{Path: strings.TrimLeft(path, "/")})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends a JSON request and decodes a JSON response into out when out
// is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if t := tokenFrom(req.Context()); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if b, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
			if json.Unmarshal(b, &msg) == nil {
				apiErr.Message = msg.Message
			}
		}

		c.log.Debug("api error",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
