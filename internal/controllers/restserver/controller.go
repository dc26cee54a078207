// Package restserver exposes the fuel-moisture and fire-behavior models
// over HTTP for dashboard frontends.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/firewxlabs/firewx/internal/database"
	"github.com/firewxlabs/firewx/internal/log"
	"github.com/firewxlabs/firewx/pkg/config"
)

// Controller represents the REST server controller
type Controller struct {
	ctx       context.Context
	wg        *sync.WaitGroup
	cfg       *config.Data
	Server    http.Server
	Store     *database.Store
	DBEnabled bool
	logger    *zap.SugaredLogger
	handlers  *Handlers
}

// NewController creates a new REST server controller. store may be nil, in
// which case run-history endpoints report history as disabled.
func NewController(ctx context.Context, wg *sync.WaitGroup, cfg *config.Data, store *database.Store, logger *zap.SugaredLogger) (*Controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no configuration provided")
	}

	ctrl := &Controller{
		ctx:       ctx,
		wg:        wg,
		cfg:       cfg,
		Store:     store,
		DBEnabled: store != nil,
		logger:    logger,
	}

	ctrl.handlers = NewHandlers(ctrl)

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", cfg.ListenAddr, cfg.HTTPPort)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(c.requestLogMiddleware)

	router.HandleFunc("/api/fuels", c.handlers.GetFuels).Methods(http.MethodGet)
	router.HandleFunc("/api/simulate", c.handlers.PostSimulate).Methods(http.MethodPost)
	router.HandleFunc("/api/simulate/diurnal", c.handlers.PostSimulateDiurnal).Methods(http.MethodPost)
	router.HandleFunc("/api/runs", c.handlers.GetRuns).Methods(http.MethodGet)
	router.HandleFunc("/api/runs/{id}", c.handlers.GetRun).Methods(http.MethodGet)
	router.HandleFunc("/api/health", c.handlers.GetHealth).Methods(http.MethodGet)

	return router
}

// statusRecorder captures the response status and size for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// requestLogMiddleware logs every request with method, path, status,
// duration, and response size
func (c *Controller) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		c.logger.Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"size", rec.size,
			"remote_addr", r.RemoteAddr,
		)
	})
}
