package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smimonitor/noticias/pkg/auth"
	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/server/mocks"
)

func testAuthServer(t *testing.T) (*AuthServer, *mocks.AuthenticatorMock) {
	t.Helper()
	a := &mocks.AuthenticatorMock{
		LoginFunc: func(ctx context.Context, email, password string) (string, auth.UserInfo, error) {
			if email != "ana@example.com" || password != "s3cret" {
				return "", auth.UserInfo{}, domain.ErrUnauthorized
			}
			return "tok", auth.UserInfo{ID: 1, Email: email, Name: "Ana"}, nil
		},
		VerifyFunc: func(token string) (*auth.Claims, error) {
			if token != "tok" {
				return nil, domain.ErrUnauthorized
			}
			return &auth.Claims{UserID: 1, Email: "ana@example.com", Name: "Ana"}, nil
		},
	}
	srv := NewAuthServer(testConfig(":8081"), a, auth.NewLimiter(5, 5*time.Minute),
		[]string{"https://painel.example.com/", " "}, "test", false)
	return srv, a
}

func newLoginRequest(ip, body string) *http.Request {
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	req.RemoteAddr = ip + ":4242"
	return req
}

func TestAuthServer_login(t *testing.T) {
	srv, a := testAuthServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, newLoginRequest("10.0.0.1", `{"email":"Ana@Example.com","password":"s3cret"}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"token":"tok","user":{"id":1,"email":"ana@example.com","name":"Ana"}}`, w.Body.String())

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, newLoginRequest("10.0.0.1", `{"email":"ana@example.com","password":"nope"}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	for _, body := range []string{`{"email":"not-an-email","password":"x"}`, `{"email":"Ana <ana@example.com>","password":"x"}`,
		`{"email":"ana@example.com","password":""}`, `{`} {
		w = httptest.NewRecorder()
		srv.router.ServeHTTP(w, newLoginRequest("10.0.0.2", body))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Len(t, a.LoginCalls(), 2)
}

func TestAuthServer_rateLimit(t *testing.T) {
	srv, a := testAuthServer(t)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, newLoginRequest("10.0.0.3", `{"email":"ana@example.com","password":"bad"}`))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, newLoginRequest("10.0.0.3", `{"email":"ana@example.com","password":"s3cret"}`))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, a.LoginCalls(), 5)

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, newLoginRequest("10.0.0.4", `{"email":"ana@example.com","password":"s3cret"}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthServer_verify(t *testing.T) {
	srv, _ := testAuthServer(t)

	req := httptest.NewRequest("GET", "/auth/verify", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[map[string]any](t, w)
	user := resp["user"].(map[string]any)
	assert.Equal(t, "Ana", user["name"])
	assert.InDelta(t, 1, user["id"], 0)

	for _, h := range []string{"", "Bearer ", "Basic dG9rOg==", "Bearer other"} {
		req = httptest.NewRequest("GET", "/auth/verify", http.NoBody)
		if h != "" {
			req.Header.Set("Authorization", h)
		}
		w = httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, h)
	}
}

func TestAuthServer_cors(t *testing.T) {
	srv, _ := testAuthServer(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := srv.cors(next)

	req := httptest.NewRequest("OPTIONS", "/auth/login", http.NoBody)
	req.Header.Set("Origin", "https://painel.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://painel.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("OPTIONS", "/auth/login", http.NoBody)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/auth/verify", http.NoBody)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Len(t, srv.origins, 1)
}
