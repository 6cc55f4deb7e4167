package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	queueengine "vigil/contexts/moderation-safety/queue-engine"
	"vigil/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "vigil/internal/platform/httpserver/docs"
)

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	queue   queueengine.Module
	metrics *metrics.Metrics
}

func New(
	queue queueengine.Module,
	m *metrics.Metrics,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		queue:   queue,
		metrics: m,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", promhttp.Handler())
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.route("POST /api/v1/moderation/queue", s.handleQueueEnqueue)
	s.route("GET /api/v1/moderation/queue", s.handleQueueList)
	s.route("GET /api/v1/moderation/queue/stats", s.handleQueueStats)
	s.route("POST /api/v1/moderation/queue/next", s.handleQueueNext)
	s.route("GET /api/v1/moderation/queue/{item_id}", s.handleQueueGetItem)
	s.route("POST /api/v1/moderation/queue/{item_id}/claim", s.handleQueueClaim)
	s.route("POST /api/v1/moderation/queue/{item_id}/release", s.handleQueueRelease)
	s.route("POST /api/v1/moderation/queue/{item_id}/resolve", s.handleQueueResolve)
	s.route("POST /api/v1/moderation/queue/{item_id}/escalate", s.handleQueueEscalate)
	s.route("GET /api/v1/moderation/queue/{item_id}/history", s.handleQueueHistory)
	s.route("GET /api/v1/moderation/violators/{violator_type}/{violator_id}/violations", s.handleQueueViolations)
	s.route("POST /api/v1/moderation/notes", s.handleQueueAddNote)
	s.route("GET /api/v1/moderation/notes", s.handleQueueListNotes)
}

// route registers a handler with per-pattern request metrics. The mux pattern
// doubles as the route label so path parameters never explode cardinality.
func (s *Server) route(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			handler(w, r)
			return
		}
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		handler(recorder, r)
		s.metrics.ObserveHTTP(r.Method, pattern, recorder.status, time.Since(started).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) decodeJSON(
	w http.ResponseWriter,
	r *http.Request,
	target any,
	writeError func(http.ResponseWriter, int, string, string),
) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
