package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/hmse-unipi/portal/internal/config"
	"github.com/hmse-unipi/portal/internal/model"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL + "/api"

	c, err := New(Params{Log: zaptest.NewLogger(t), Config: cfg})
	require.NoError(t, err)
	return c
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var in Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, Credentials{Email: "sari@example.com", Password: "rahasia"}, in)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"token":"tok-1","user":{"id":7,"name":"Sari","email":"sari@example.com","role":"admin"}}`)
	}))

	res, err := c.Auth.Login(context.Background(), Credentials{Email: "sari@example.com", Password: "rahasia"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, &model.User{ID: 7, Name: "Sari", Email: "sari@example.com", Role: model.RoleAdmin}, res.User)
}

func TestBearerTokenFromContext(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/users/events", r.URL.Path)
		io.WriteString(w, `[{"id":1,"title":"Seminar","price":0,"payment_status":"pending"}]`)
	}))

	events, err := c.Users.MyEvents(WithToken(context.Background(), "tok-1"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "pending", events[0].PaymentStatus)
}

func TestError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/profile":
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"message":"Token expired"}`)
		default:
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, `<html>bad gateway</html>`)
		}
	}))

	_, err := c.Users.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Token expired", Message(err, "fallback"))
	assert.Equal(t, "api: 401: Token expired", err.Error())

	_, err = c.Events.List(context.Background(), nil)
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "fallback", Message(err, "fallback"))
	assert.Equal(t, "api: 502 Bad Gateway", err.Error())
}

func TestEventsListQuery(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "seminar", r.URL.Query().Get("search"))
		io.WriteString(w, `[]`)
	}))

	events, err := c.Events.List(context.Background(), url.Values{"search": {"seminar"}})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRegisterAndSubmitProof(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/events/4/register":
			io.WriteString(w, `{"id":31}`)
		case "/api/payments/registrations/31/proof":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			f, hdr, err := r.FormFile("proof")
			require.NoError(t, err)
			defer f.Close()
			b, _ := io.ReadAll(f)
			assert.Equal(t, "bukti.jpg", hdr.Filename)
			assert.Equal(t, "jpeg-bytes", string(b))
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	ctx := WithToken(context.Background(), "tok-1")
	reg, err := c.Events.Register(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 31, reg.ID)

	err = c.Payments.SubmitProof(ctx, reg.ID, "bukti.jpg", strings.NewReader("jpeg-bytes"))
	assert.NoError(t, err)
}

func TestConfirmPayment(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/registrations/31/confirm", r.URL.Path)
		var in model.Confirmation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, model.Confirmation{Status: "approve", Notes: "ok"}, in)
	}))

	err := c.Payments.Confirm(context.Background(), 31, model.Confirmation{Status: "approve", Notes: "ok"})
	assert.NoError(t, err)
}

func TestBlogCategoriesEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"id":1,"name":"Kegiatan"},{"id":2,"name":"Prestasi"}]}`)
	}))

	cats, err := c.BlogCategories.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.BlogCategory{{ID: 1, Name: "Kegiatan"}, {ID: 2, Name: "Prestasi"}}, cats)
}

func TestReports(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/reports/sales":
			io.WriteString(w, `{"total":"300000.00","count":2,"sales":[{"event_title":"Seminar","user_name":"Budi","amount_paid":150000,"payment_date":"2024-05-01"}]}`)
		case "/api/admin/reports/events":
			io.WriteString(w, `[{"id":1,"title":"Seminar","capacity":0,"registered_users":2,"total_revenue":300000}]`)
		}
	}))

	sales, err := c.Admin.SalesReport(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.Rupiah(150000), sales.Average())

	events, err := c.Admin.EventReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, events[0].RegisteredUsers)
}

func TestEndpoints(t *testing.T) {
	event := &model.Event{Title: "Seminar", Date: "2024-05-01", Time: "09:00", Location: "Aula", Price: 25000}
	eventJSON := `{"id":0,"title":"Seminar","date":"2024-05-01","time":"09:00","location":"Aula","price":25000}`
	budi := &model.User{ID: 2, Name: "Budi", Email: "budi@example.com", Role: model.RoleMember}
	budiJSON := `{"id":2,"name":"Budi","email":"budi@example.com","role":"user"}`
	blog := &model.Blog{Title: "Rapat", Content: "Rapat anggota.", Categories: model.IDs{3}}
	blogJSON := `{"id":0,"title":"Rapat","content":"Rapat anggota.","categories":[3]}`

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		reply  string
		call   func(ctx context.Context, c *Client) (any, error)
		want   any
	}{
		{
			name:   "reset password",
			method: http.MethodPost, path: "/api/auth/reset-password",
			body: `{"email":"budi@example.com"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Auth.ResetPassword(ctx, "budi@example.com")
			},
		},
		{
			name:   "get event",
			method: http.MethodGet, path: "/api/events/4",
			reply: `{"id":4,"title":"Seminar","price":"25000.00"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Events.Get(ctx, 4)
			},
			want: &model.Event{ID: 4, Title: "Seminar", Price: 25000},
		},
		{
			name:   "create event",
			method: http.MethodPost, path: "/api/events",
			body: eventJSON,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Events.Create(ctx, event)
			},
		},
		{
			name:   "update event",
			method: http.MethodPut, path: "/api/events/4",
			body: eventJSON,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Events.Update(ctx, 4, event)
			},
		},
		{
			name:   "delete event",
			method: http.MethodDelete, path: "/api/events/4",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Events.Delete(ctx, 4)
			},
		},
		{
			name:   "profile",
			method: http.MethodGet, path: "/api/users/profile",
			reply: `{"id":"2","name":"Budi","email":"budi@example.com","role":"user"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Users.Profile(ctx)
			},
			want: budi,
		},
		{
			name:   "update profile",
			method: http.MethodPut, path: "/api/users/profile",
			body: budiJSON,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Users.UpdateProfile(ctx, budi)
			},
		},
		{
			name:   "change password",
			method: http.MethodPut, path: "/api/users/change-password",
			body: `{"currentPassword":"lama","newPassword":"baru123"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Users.ChangePassword(ctx, PasswordChange{CurrentPassword: "lama", NewPassword: "baru123"})
			},
		},
		{
			name:   "list users",
			method: http.MethodGet, path: "/api/admin/users",
			reply: `[` + budiJSON + `]`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Admin.Users(ctx)
			},
			want: []model.User{*budi},
		},
		{
			name:   "get user",
			method: http.MethodGet, path: "/api/admin/users/2",
			reply: budiJSON,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Admin.User(ctx, 2)
			},
			want: budi,
		},
		{
			name:   "update user",
			method: http.MethodPut, path: "/api/admin/users/2",
			body: budiJSON,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Admin.UpdateUser(ctx, 2, budi)
			},
		},
		{
			name:   "delete user",
			method: http.MethodDelete, path: "/api/admin/users/2",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Admin.DeleteUser(ctx, 2)
			},
		},
		{
			name:   "set role",
			method: http.MethodPut, path: "/api/admin/users/2/role",
			body: `{"role":"admin"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Admin.SetRole(ctx, 2, model.RoleAdmin)
			},
		},
		{
			name:   "get category",
			method: http.MethodGet, path: "/api/blog-categories/3",
			reply: `{"id":3,"name":"Kegiatan"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BlogCategories.Get(ctx, 3)
			},
			want: &model.BlogCategory{ID: 3, Name: "Kegiatan"},
		},
		{
			name:   "update category",
			method: http.MethodPut, path: "/api/blog-categories/3",
			body: `{"id":3,"name":"Prestasi"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.BlogCategories.Update(ctx, 3, &model.BlogCategory{ID: 3, Name: "Prestasi"})
			},
		},
		{
			name:   "delete category",
			method: http.MethodDelete, path: "/api/blog-categories/3",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.BlogCategories.Delete(ctx, 3)
			},
		},
		{
			name:   "list blogs",
			method: http.MethodGet, path: "/api/blogs",
			reply: `[{"id":1,"title":"Rapat","content":"Rapat anggota.","categories":[3]}]`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Blogs.List(ctx)
			},
			want: []model.Blog{{ID: 1, Title: "Rapat", Content: "Rapat anggota.", Categories: model.IDs{3}}},
		},
		{
			name:   "blogs by category",
			method: http.MethodGet, path: "/api/blogs/category/3",
			reply: `[{"id":1,"title":"Rapat","content":"Rapat anggota.","categories":[3],"category_names":["Kegiatan"]}]`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Blogs.ByCategory(ctx, 3)
			},
			want: []model.Blog{{
				ID: 1, Title: "Rapat", Content: "Rapat anggota.",
				Categories: model.IDs{3}, CategoryNames: []string{"Kegiatan"},
			}},
		},
		{
			name:   "get blog",
			method: http.MethodGet, path: "/api/blogs/1",
			reply: `{"id":1,"title":"Rapat","content":"Rapat anggota.","categories":[3]}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Blogs.Get(ctx, 1)
			},
			want: &model.Blog{ID: 1, Title: "Rapat", Content: "Rapat anggota.", Categories: model.IDs{3}},
		},
		{
			name:   "create blog",
			method: http.MethodPost, path: "/api/blogs",
			body: blogJSON,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Blogs.Create(ctx, blog)
			},
		},
		{
			name:   "update blog",
			method: http.MethodPut, path: "/api/blogs/1",
			body: blogJSON,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Blogs.Update(ctx, 1, blog)
			},
		},
		{
			name:   "delete blog",
			method: http.MethodDelete, path: "/api/blogs/1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Blogs.Delete(ctx, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

				b, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				if tt.body == "" {
					assert.Empty(t, b)
				} else {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.JSONEq(t, tt.body, string(b))
				}

				w.Header().Set("Content-Type", "application/json")
				io.WriteString(w, tt.reply)
			}))

			got, err := tt.call(WithToken(context.Background(), "tok-1"), c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
