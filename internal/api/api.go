package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/susu3304/cajachica/internal/ledger"
	applog "github.com/susu3304/cajachica/internal/log"
)

const shutdownTimeout = 5 * time.Second

// API is the read-only HTTP view of the ledger.
type API struct {
	router *mux.Router
	ledger *ledger.Ledger
	bind   string
	log    *applog.Logger
}

func New(bind string, l *ledger.Ledger, logger *applog.Logger) *API {
	api := &API{
		router: mux.NewRouter(),
		ledger: l,
		bind:   bind,
		log:    logger.WithComponent(applog.ComponentHTTP),
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.router.HandleFunc("/healthz", a.handleHealth).Methods("GET")

	ledgerRoutes := a.router.PathPrefix("/api/ledger").Subrouter()
	ledgerRoutes.Use(a.logRequests)
	ledgerRoutes.HandleFunc("", a.handleTotal).Methods("GET")
	ledgerRoutes.HandleFunc("/transactions", a.handleTransactions).Methods("GET")
}

// Handler returns the router wrapped with CORS.
func (a *API) Handler() http.Handler {
	// Read-only data, so any origin may read it
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	}
	return cors.New(corsOptions).Handler(a.router)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *API) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.bind,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("API server listening", "addr", "http://"+a.bind)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		a.log.Debug("request served",
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rec.status)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
