package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/alexanderramin/swimadmin/internal/config"
	"github.com/alexanderramin/swimadmin/internal/service"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Services bundles the store operations the API exposes.
type Services struct {
	Programs  service.ProgramService
	Levels    service.LevelService
	Skills    service.SkillService
	Progress  service.ProgressService
	Maps      service.LevelMapService
	Dashboard service.DashboardService
}

// Server is the JSON API plus the live map editor websocket.
type Server struct {
	svc         Services
	logger      *slog.Logger
	saveTimeout time.Duration
	mapSchema   *jsonschema.Schema
	upgrader    websocket.Upgrader
	handler     http.Handler
	server      *http.Server
}

// NewServer wires routes and middleware. It fails only if the embedded map
// schema does not compile.
func NewServer(svc Services, cfg config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	schema, err := compileMapSchema()
	if err != nil {
		return nil, err
	}

	s := &Server{
		svc:         svc,
		logger:      logger,
		saveTimeout: cfg.SaveTimeout(),
		mapSchema:   schema,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     allowOrigins(cfg.CORSOrigins),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	mux.HandleFunc("GET /api/programs", s.listPrograms)
	mux.HandleFunc("POST /api/programs", s.createProgram)
	mux.HandleFunc("GET /api/programs/{id}", s.getProgram)
	mux.HandleFunc("PUT /api/programs/{id}", s.updateProgram)
	mux.HandleFunc("DELETE /api/programs/{id}", s.deleteProgram)
	mux.HandleFunc("GET /api/programs/{id}/levels", s.listLevels)

	mux.HandleFunc("POST /api/levels", s.createLevel)
	mux.HandleFunc("GET /api/levels/{id}", s.getLevel)
	mux.HandleFunc("PUT /api/levels/{id}", s.updateLevel)
	mux.HandleFunc("DELETE /api/levels/{id}", s.deleteLevel)
	mux.HandleFunc("GET /api/levels/{id}/skills", s.listSkills)

	mux.HandleFunc("GET /api/levels/{id}/map", s.getMap)
	mux.HandleFunc("PUT /api/levels/{id}/map", s.putMap)
	mux.HandleFunc("GET /api/levels/{id}/map/session", s.mapSession)

	mux.HandleFunc("POST /api/skills", s.createSkill)
	mux.HandleFunc("GET /api/skills/{id}", s.getSkill)
	mux.HandleFunc("PUT /api/skills/{id}", s.updateSkill)
	mux.HandleFunc("DELETE /api/skills/{id}", s.deleteSkill)
	mux.HandleFunc("GET /api/skills/{id}/progress", s.listProgress)

	mux.HandleFunc("POST /api/progress", s.createProgress)
	mux.HandleFunc("GET /api/progress/{id}", s.getProgress)
	mux.HandleFunc("PUT /api/progress/{id}", s.updateProgress)
	mux.HandleFunc("DELETE /api/progress/{id}", s.deleteProgress)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler(mux)

	s.handler = withLogging(logger, withRecovery(logger, corsHandler))
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("api_listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func allowOrigins(origins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || slices.Contains(origins, "*") {
			return true
		}
		return slices.Contains(origins, origin)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := s.svc.Dashboard.Summary(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
