package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/amoor/pkg/observability"
	"github.com/matzehuels/amoor/pkg/pipeline"
)

// RunIDHeader carries the run id of every response.
const RunIDHeader = "X-Run-ID"

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

type ctxKey struct{}

// RunID returns the run id assigned to the request.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(runner *pipeline.Runner, logger *log.Logger) chi.Router {
	if logger == nil {
		logger = log.Default()
	}
	h := &Handler{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(runIDMiddleware)
	r.Use(hooksMiddleware)

	r.Get("/healthz", h.Health)
	r.Route("/v1/models", func(r chi.Router) {
		r.Post("/", h.CreateModel)
		r.Post("/stats", h.ModelStats)
		r.Post("/graph", h.ModelGraph)
		r.Post("/preview", h.ModelPreview)
	})
	return r
}

func runIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RunIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// hooksMiddleware reports requests to the registered API hooks.
func hooksMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.API()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}
