package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/mail"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/smimonitor/noticias/pkg/auth"
	"github.com/smimonitor/noticias/pkg/domain"
)

//go:generate moq -out mocks/authenticator.go -pkg mocks -skip-ensure -fmt goimports . Authenticator

// Authenticator checks credentials and tokens
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, auth.UserInfo, error)
	Verify(token string) (*auth.Claims, error)
}

// AuthServer is the login gate HTTP server
type AuthServer struct {
	config  ConfigProvider
	auth    Authenticator
	limiter *auth.Limiter
	origins map[string]bool
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  auth.UserInfo `json:"user"`
}

// NewAuthServer makes the gate server. Only the listed origins get CORS headers.
func NewAuthServer(cfg ConfigProvider, a Authenticator, limiter *auth.Limiter, origins []string, version string, debug bool) *AuthServer {
	s := &AuthServer{
		config:  cfg,
		auth:    a,
		limiter: limiter,
		origins: map[string]bool{},
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}
	for _, o := range origins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			s.origins[o] = true
		}
	}

	s.router.Use(rest.AppInfo("noticias-auth", "smimonitor", version))
	s.router.Use(rest.Ping)
	s.router.Use(rest.RealIP)
	if debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}
	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.SizeLimit(64 * 1024))
	s.router.Use(s.cors)

	s.router.Mount("/auth").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("POST /login", s.loginHandler)
		r.HandleFunc("GET /verify", s.verifyHandler)
	})
	return s
}

// Run starts the gate and shuts it down when ctx is canceled
func (s *AuthServer) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting auth server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	return runHTTP(ctx, s.httpServer)
}

// loginHandler checks credentials, at most limiter attempts per client ip are served per window
func (s *AuthServer) loginHandler(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if !s.limiter.Allow(ip) {
		log.Printf("[WARN] login rate limit hit for %s", ip)
		handleError(w, r, fmt.Errorf("%w: too many login attempts, try again later", domain.ErrRateLimited))
		return
	}

	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if req.Password == "" {
		handleError(w, r, fmt.Errorf("%w: password is required", domain.ErrInvalidArgument))
		return
	}

	token, user, err := s.auth.Login(r.Context(), email, req.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, loginResponse{Token: token, User: user})
}

// verifyHandler returns the claims of a bearer token
func (s *AuthServer) verifyHandler(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		handleError(w, r, fmt.Errorf("%w: token not provided", domain.ErrUnauthorized))
		return
	}
	claims, err := s.auth.Verify(token)
	if err != nil {
		log.Printf("[DEBUG] token rejected: %v", err)
		handleError(w, r, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"user": claims})
}

// cors sets CORS headers for allowed origins, preflight requests are answered directly
func (s *AuthServer) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.origins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Add("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			if origin != "" && !s.origins[origin] {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// normalizeEmail validates a bare address and lower-cases it
func normalizeEmail(v string) (string, error) {
	v = strings.TrimSpace(v)
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return "", fmt.Errorf("%w: invalid email", domain.ErrInvalidArgument)
	}
	return strings.ToLower(addr.Address), nil
}

// clientIP returns the host part of RemoteAddr, already resolved by rest.RealIP
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
