// Package app wires the HTTP surface of the gateway: request envelopes,
// task-specific prompt building, middleware, and server lifecycle.
package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/your-org/ai-gateway/internal/config"
	"github.com/your-org/ai-gateway/internal/metrics"
	"github.com/your-org/ai-gateway/internal/security"
	"github.com/your-org/ai-gateway/internal/selector"
	"github.com/your-org/ai-gateway/pkg/logger"
)

// Options collects the dependencies injected into the HTTP app.
type Options struct {
	Config         *config.Config
	Selection      selector.Selection
	Log            *logger.Logger
	Metrics        metrics.Recorder
	MetricsHandler http.Handler
}

// App serves the gateway endpoints against the provider chosen at startup.
type App struct {
	cfg            *config.Config
	sel            selector.Selection
	log            *logger.Logger
	rec            metrics.Recorder
	metricsHandler http.Handler
	sentryEnabled  bool
}

func New(opts Options) *App {
	a := &App{
		cfg:            opts.Config,
		sel:            opts.Selection,
		log:            opts.Log,
		rec:            opts.Metrics,
		metricsHandler: opts.MetricsHandler,
		sentryEnabled:  opts.Config != nil && opts.Config.ErrorTracking.SentryDSN != "",
	}
	if a.log == nil {
		a.log = logger.Get()
	}
	if a.rec == nil {
		a.rec = metrics.NoopRecorder{}
	}
	return a
}

// Handler builds the route table with the middleware chain applied.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ai/generate", post(a.handleGenerate))
	mux.HandleFunc("/ai/provider", get(a.handleProvider))
	mux.HandleFunc("/ai/translate", post(a.handleTranslate))
	mux.HandleFunc("/ai/summarize", post(a.handleSummarize))
	mux.HandleFunc("/ai/generate-code", post(a.handleGenerateCode))
	mux.HandleFunc("/ai/chat", post(a.handleChat))

	mux.HandleFunc("/health", get(a.handleHealth))
	mux.HandleFunc("/info", get(a.handleInfo))
	if a.metricsHandler != nil {
		mux.Handle("/metrics", a.metricsHandler)
	}
	mux.HandleFunc("/", get(a.handleRoot))

	return a.middleware(a.cors(mux))
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr(),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.log.Infow("http server starting", "addr", srv.Addr, "provider", a.sel.Name)

	if a.cfg.Server.TLSEnabled {
		tlsCfg, err := security.ServerTLSConfig(a.cfg.Server.TLSCertFile, a.cfg.Server.TLSKeyFile)
		if err != nil {
			return err
		}
		srv.TLSConfig = tlsCfg
		ln, err := tls.Listen("tcp", srv.Addr, tlsCfg)
		if err != nil {
			return fmt.Errorf("tls listen: %w", err)
		}
		return srv.Serve(ln)
	}
	return srv.ListenAndServe()
}

func post(h http.HandlerFunc) http.HandlerFunc {
	return allowMethod(http.MethodPost, h)
}

func get(h http.HandlerFunc) http.HandlerFunc {
	return allowMethod(http.MethodGet, h)
}

func allowMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}
