package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/api/http/middleware"
	"github.com/doctorshouse/backend/internal/model"
	"github.com/doctorshouse/backend/internal/service/user"
	"github.com/doctorshouse/backend/pkg/token"
)

type fakeUserService struct {
	user *model.User
	err  error
}

func (f *fakeUserService) List(ctx context.Context) ([]model.User, error) { return nil, nil }

func (f *fakeUserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.user.IsAdmin(), nil
}

func (f *fakeUserService) Register(ctx context.Context, u model.User) (*user.RegisterResult, error) {
	return nil, nil
}

func (f *fakeUserService) PromoteAdmin(ctx context.Context, id string) error { return nil }

func newAdminStatusApp(t *testing.T, svc user.Service) (*fiber.App, *token.Manager) {
	t.Helper()

	mgr, err := token.New(token.Config{Secret: "test-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("token.New() error = %v", err)
	}

	app := fiber.New()
	h := NewUserHandler(svc)
	app.Get("/users/admin/:email", middleware.TokenRequired(mgr), h.AdminStatus)

	return app, mgr
}

func TestAdminStatus(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeUserService
		tokenEmail string
		pathEmail  string
		wantStatus int
		wantAdmin  bool
	}{
		{
			name:       "self lookup, admin",
			svc:        &fakeUserService{user: &model.User{Email: "a@example.com", Role: model.RoleAdmin}},
			tokenEmail: "a@example.com",
			pathEmail:  "a@example.com",
			wantStatus: fiber.StatusOK,
			wantAdmin:  true,
		},
		{
			name:       "self lookup, plain user",
			svc:        &fakeUserService{user: &model.User{Email: "u@example.com", Role: model.RoleUser}},
			tokenEmail: "u@example.com",
			pathEmail:  "u@example.com",
			wantStatus: fiber.StatusOK,
			wantAdmin:  false,
		},
		{
			name:       "probing another account is forbidden even for admins",
			svc:        &fakeUserService{user: &model.User{Email: "a@example.com", Role: model.RoleAdmin}},
			tokenEmail: "a@example.com",
			pathEmail:  "victim@example.com",
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "url-encoded path email still matches",
			svc:        &fakeUserService{user: &model.User{Email: "a+b@example.com", Role: model.RoleUser}},
			tokenEmail: "a+b@example.com",
			pathEmail:  "a%2Bb%40example.com",
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, mgr := newAdminStatusApp(t, tt.svc)

			signed, err := mgr.Issue(map[string]any{"email": tt.tokenEmail})
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}

			req := httptest.NewRequest("GET", "/users/admin/"+tt.pathEmail, nil)
			req.Header.Set("Authorization", "Bearer "+signed)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus != fiber.StatusOK {
				return
			}

			var body struct {
				Admin bool `json:"admin"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Admin != tt.wantAdmin {
				t.Errorf("admin = %v, want %v", body.Admin, tt.wantAdmin)
			}
		})
	}
}

func TestAdminStatusRequiresToken(t *testing.T) {
	app, _ := newAdminStatusApp(t, &fakeUserService{user: &model.User{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/users/admin/a@example.com", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
