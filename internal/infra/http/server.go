package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Spok95/concretrack/internal/domain/checklists"
	"github.com/Spok95/concretrack/internal/domain/dashboard"
	"github.com/Spok95/concretrack/internal/domain/materials"
	"github.com/Spok95/concretrack/internal/domain/orders"
	"github.com/Spok95/concretrack/internal/domain/plants"
	"github.com/Spok95/concretrack/internal/domain/recipes"
	"github.com/Spok95/concretrack/internal/infra/metrics"
	"github.com/Spok95/concretrack/internal/infra/notify"
)

type Server struct {
	srv *http.Server
}

// Deps are the collaborators served by the API. A nil Gatherer hides /metrics.
type Deps struct {
	Log        *slog.Logger
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	Materials  *materials.Ledger
	Recipes    *recipes.Engine
	Orders     *orders.Lifecycle
	Checklists *checklists.Lifecycle
	Plants     *plants.Registry
	Dashboard  *dashboard.Service
	Alerts     *notify.StockAlerter
}

type api struct{ Deps }

func NewRouter(d Deps) *mux.Router {
	a := &api{Deps: d}
	r := mux.NewRouter()
	r.Use(requestID, observe(d.Log, d.Metrics))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	sub := r.PathPrefix("/api").Subrouter()
	a.inventoryRoutes(sub.PathPrefix("/inventory").Subrouter())
	a.orderRoutes(sub.PathPrefix("/orders").Subrouter())
	a.checklistRoutes(sub.PathPrefix("/checklists").Subrouter())
	a.plantRoutes(sub.PathPrefix("/plants").Subrouter())
	sub.HandleFunc("/dashboard", a.dashboard).Methods(http.MethodGet)

	return r
}

func New(addr string, h http.Handler) *Server {
	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (a *api) dashboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Dashboard.Get())
}
