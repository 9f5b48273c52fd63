package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/belugatempo-dot/census-dashboard/internal/i18n"
	"github.com/belugatempo-dot/census-dashboard/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		env, err := initDashboard(ctx, "serve", 0)
		if err != nil {
			return err
		}
		defer env.Close()

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           buildRouter(env.Dashboard, env.Prefs, cfg.Server.AllowedOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

type dashboardLoader interface {
	Load(ctx context.Context) (*model.Dashboard, error)
}

type languageStore interface {
	Get(ctx context.Context) (i18n.Language, error)
	Set(ctx context.Context, l i18n.Language) error
	Toggle(ctx context.Context) (i18n.Language, error)
}

type api struct {
	dash  dashboardLoader
	prefs languageStore
}

// buildRouter wires the HTTP routes. Every GET /api/dashboard runs one fetch
// cycle.
func buildRouter(dash dashboardLoader, prefs languageStore, allowedOrigins []string) http.Handler {
	a := &api{dash: dash, prefs: prefs}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", a.getDashboard)
		r.Route("/preferences/language", func(r chi.Router) {
			r.Get("/", a.getLanguage)
			r.Put("/", a.setLanguage)
			r.Post("/toggle", a.toggleLanguage)
		})
	})

	return r
}

func (a *api) getDashboard(w http.ResponseWriter, r *http.Request) {
	lang, err := a.requestLanguage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := a.dash.Load(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error": i18n.UnavailableMessage(lang),
		})
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// requestLanguage honors ?lang= and otherwise falls back to the stored
// preference. A preference read failure degrades to the default language.
func (a *api) requestLanguage(r *http.Request) (i18n.Language, error) {
	if q := r.URL.Query().Get("lang"); q != "" {
		return i18n.ParseLanguage(q)
	}
	lang, err := a.prefs.Get(r.Context())
	if err != nil {
		zap.L().Warn("read language preference", zap.Error(err))
		return i18n.Default, nil
	}
	return lang, nil
}

type languageBody struct {
	Language string `json:"language"`
}

func (a *api) getLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := a.prefs.Get(r.Context())
	if err != nil {
		zap.L().Error("read language preference", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to read language preference")
		return
	}
	writeJSON(w, http.StatusOK, languageBody{Language: string(lang)})
}

func (a *api) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	lang, err := i18n.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.prefs.Set(r.Context(), lang); err != nil {
		zap.L().Error("save language preference", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to save language preference")
		return
	}
	writeJSON(w, http.StatusOK, languageBody{Language: string(lang)})
}

func (a *api) toggleLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := a.prefs.Toggle(r.Context())
	if err != nil {
		zap.L().Error("toggle language preference", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to save language preference")
		return
	}
	writeJSON(w, http.StatusOK, languageBody{Language: string(lang)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": map[string]string{"message": msg}})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		zap.L().Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
