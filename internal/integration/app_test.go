package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/tkoseoglu/theatre-reservation-system/api"
	"github.com/tkoseoglu/theatre-reservation-system/internal/app"
)

type TestApp struct {
	App *app.Application
	// DB is a separate pool used to seed and inspect test state directly.
	DB *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	application, err := app.New(cfg)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		application.Close()
		return nil, err
	}

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.App.Close()
}

// authenticatedUserCookies registers the shared test user (idempotently) and
// logs in, returning the session cookies to attach to subsequent requests.
func (a *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	return a.loginUserCookies(t, testUserEmail)
}

func (a *TestApp) loginUserCookies(t testing.TB, email string) []*http.Cookie {
	t.Helper()

	registerBody, err := json.Marshal(api.RegisterRequest{
		FirstName: "Integration",
		LastName:  "Test",
		Email:     email,
		Password:  testUserPassword,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)

	// 400 means the user is already registered from an earlier test.
	require.Contains(t, []int{http.StatusCreated, http.StatusBadRequest}, rec.Code)

	loginBody, err := json.Marshal(api.LoginRequest{
		Email:    email,
		Password: testUserPassword,
	})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	return rec.Result().Cookies()
}
