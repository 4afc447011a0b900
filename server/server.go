package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/metrics"
	"github.com/smimonitor/noticias/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsService
//go:generate moq -out mocks/weeks.go -pkg mocks -skip-ensure -fmt goimports . WeekService
//go:generate moq -out mocks/portals.go -pkg mocks -skip-ensure -fmt goimports . PortalService
//go:generate moq -out mocks/intake.go -pkg mocks -skip-ensure -fmt goimports . IntakeService
//go:generate moq -out mocks/dashboard.go -pkg mocks -skip-ensure -fmt goimports . DashboardService

// maxBodySize limits request bodies
const maxBodySize = 1024 * 1024

// Server represents the data API HTTP server
type Server struct {
	config  ConfigProvider
	svc     Services
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Services bundles the domain services used by handlers
type Services struct {
	News      NewsService
	Weeks     WeekService
	Portals   PortalService
	Intake    IntakeService
	Dashboard DashboardService
}

// NewsService lists, reads and annotates news items
type NewsService interface {
	List(ctx context.Context, req service.ListRequest) (service.ListResult, error)
	Get(ctx context.Context, id int64) (domain.NewsItem, error)
	Update(ctx context.Context, id int64, patch domain.NewsPatch) (domain.NewsItem, error)
	StrategicDates(ctx context.Context) ([]domain.Date, error)
}

// WeekService manages strategic weeks
type WeekService interface {
	List(ctx context.Context, day domain.Date) ([]domain.StrategicWeek, error)
	Get(ctx context.Context, id int64) (domain.StrategicWeek, error)
	Create(ctx context.Context, in domain.WeekInput) (domain.StrategicWeek, error)
	Update(ctx context.Context, id int64, in domain.WeekInput) (domain.StrategicWeek, error)
}

// PortalService manages news portals
type PortalService interface {
	GetByName(ctx context.Context, name string) (domain.Portal, error)
	Create(ctx context.Context, p domain.Portal) (domain.Portal, error)
	Update(ctx context.Context, id int64, p domain.Portal) (domain.Portal, error)
}

// IntakeService creates manually posted items
type IntakeService interface {
	Create(ctx context.Context, in domain.NewsInput) (domain.NewsItem, error)
}

// DashboardService computes dashboard metrics
type DashboardService interface {
	Summary(ctx context.Context, req service.DashboardRequest) (metrics.Summary, error)
	Ranking(ctx context.Context, req service.DashboardRequest) (metrics.Ranking, error)
	TopPortals(ctx context.Context, req service.DashboardRequest, sentiment domain.Sentiment) ([]metrics.PortalSentiment, error)
	Overview(ctx context.Context, req service.DashboardRequest) (service.Overview, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, svc Services, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		svc:     svc,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

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

// runHTTP serves until ctx is canceled, then shuts the server down
func runHTTP(ctx context.Context, srv *http.Server) error {
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server %s", srv.Addr)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("noticias", "smimonitor", s.version))
	s.router.Use(rest.Ping)
	s.router.Use(rest.RealIP)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(maxBodySize))
	s.router.Use(corsAny)
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /noticias", s.listNewsHandler)
		r.HandleFunc("GET /noticias/strategic-dates", s.strategicDatesHandler)
		r.HandleFunc("GET /noticias/{id}", s.getNewsHandler)
		r.HandleFunc("PUT /noticias/{id}", s.updateNewsHandler)
		r.HandleFunc("POST /noticias-postagem", s.postNewsHandler)
	})

	s.router.Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /dashboard", s.dashboardHandler)
		r.HandleFunc("GET /dashboard/noticias-total", s.dashboardTotal(func(sm metrics.Summary) int { return sm.Total }))
		r.HandleFunc("GET /dashboard/noticias-positivas", s.dashboardTotal(func(sm metrics.Summary) int { return sm.Positive }))
		r.HandleFunc("GET /dashboard/noticias-negativas", s.dashboardTotal(func(sm metrics.Summary) int { return sm.Negative }))
		r.HandleFunc("GET /dashboard/noticias-neutras", s.dashboardTotal(func(sm metrics.Summary) int { return sm.Neutral }))
		r.HandleFunc("GET /dashboard/noticias-por-periodo", s.dashboardSeries(func(sm metrics.Summary) any { return sm.Counts() }))
		r.HandleFunc("GET /dashboard/evolucao-noticias", s.dashboardSeries(func(sm metrics.Summary) any { return sm.Counts() }))
		r.HandleFunc("GET /dashboard/pontuacao-por-periodo", s.dashboardSeries(func(sm metrics.Summary) any { return sm.Scores() }))
		r.HandleFunc("GET /dashboard/sentimento-noticias", s.dashboardSeries(func(sm metrics.Summary) any { return sm.Sentiments() }))
		r.HandleFunc("GET /dashboard/portais-ranking", s.portalRankingHandler)
		r.HandleFunc("GET /dashboard/portais-relevantes-positivas", s.topPortalsHandler(domain.SentimentPositive))
		r.HandleFunc("GET /dashboard/portais-relevantes-negativas", s.topPortalsHandler(domain.SentimentNegative))
	})

	s.router.Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /semana-estrategica", s.listWeeksHandler)
		r.HandleFunc("POST /semana-estrategica", s.createWeekHandler)
		r.HandleFunc("GET /semana-estrategica/{id}", s.getWeekHandler)
		r.HandleFunc("PUT /semana-estrategica/{id}", s.updateWeekHandler)
	})

	s.router.Route(func(r *routegroup.Bundle) {
		r.HandleFunc("POST /portais", s.createPortalHandler)
		r.HandleFunc("GET /portais/{nome}", s.getPortalHandler)
		r.HandleFunc("PUT /portais/{id}", s.updatePortalHandler)
	})
}

// corsAny allows any origin, preflight requests are answered directly
func corsAny(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// pathID parses a numeric path value
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidArgument, name, r.PathValue(name))
	}
	return id, nil
}

// decodeBody reads a JSON request body into v
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body: %w", domain.ErrInvalidArgument, err)
	}
	return nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// handleError maps domain errors to status codes. Unexpected errors are logged and
// reported with a generic message.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var overlap *domain.OverlapError
	switch {
	case errors.As(err, &overlap):
		renderJSON(w, r, http.StatusBadRequest, map[string]any{
			"error": overlap.Error(),
			"conflict": map[string]any{
				"id":           overlap.ID,
				"ciclo":        overlap.Cycle,
				"data_inicial": overlap.Interval.Start,
				"data_final":   overlap.Interval.End,
			},
		})
	case errors.Is(err, domain.ErrInvalidArgument):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		renderError(w, r, err, http.StatusUnauthorized)
	case errors.Is(err, domain.ErrRateLimited):
		renderError(w, r, err, http.StatusTooManyRequests)
	default:
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		renderError(w, r, errors.New("internal server error"), http.StatusInternalServerError)
	}
}
