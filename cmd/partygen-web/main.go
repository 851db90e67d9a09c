// Package main runs the upload-and-generate web front end: one form, one
// POST endpoint, zip bundle back.
package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/playbarn/partygen/pkg/partygen"
	"github.com/playbarn/partygen/pkg/partygen/bundle"
	"github.com/playbarn/partygen/pkg/partygen/input"
)

const maxUploadBytes = 32 << 20

const indexPage = `<!doctype html>
<html>
<head><title>Party Pack Generator</title></head>
<body>
  <h1>Party Pack Generator</h1>
  <form method="POST" action="/api/generate" enctype="multipart/form-data">
    <p><label>Bookings workbook (Book1.xlsx): <input type="file" name="book1" accept=".xlsx" required></label></p>
    <p><label>Password: <input type="password" name="password"></label></p>
    <p><button type="submit">Generate</button></p>
  </form>
</body>
</html>
`

type server struct {
	password  string
	templates partygen.DirTemplates
	log       *slog.Logger
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := env("PORT", "8080")
	templatesDir := env("TEMPLATES_DIR", "templates")
	logLevel := env("LOG_LEVEL", "info")

	var lvl slog.Level
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	srv := &server{
		password:  strings.TrimSpace(os.Getenv("APP_PASSWORD")),
		templates: partygen.NewDirTemplates(templatesDir),
		log:       logger,
	}
	if srv.password == "" {
		logger.Warn("APP_PASSWORD not set; generation endpoint is open")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", srv.handleIndex)
	r.Post("/api/generate", srv.handleGenerate)

	httpSrv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("listening", "addr", httpSrv.Addr, "templates", templatesDir)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexPage)
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	if s.password != "" {
		supplied := strings.TrimSpace(r.FormValue("password"))
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(s.password)) != 1 {
			http.Error(w, "invalid password", http.StatusUnauthorized)
			return
		}
	}

	file, _, err := r.FormFile("book1")
	if err != nil {
		http.Error(w, "missing Book1 file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		http.Error(w, "upload read failed", http.StatusBadRequest)
		return
	}
	if len(data) > maxUploadBytes {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}

	rows, err := input.Rows(data)
	if err != nil {
		s.log.Debug("bookings parse rejected", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files, err := partygen.GenerateAll(rows, s.templates, partygen.DefaultOptions())
	if err != nil {
		s.log.Error("generation failed", "error", err)
		http.Error(w, "generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("generated bundle", "bookings", len(rows), "documents", len(files))

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+bundle.Name+`"`)
	if err := bundle.Write(w, files); err != nil {
		// Headers are already sent; the client sees a truncated archive.
		s.log.Error("bundle stream failed", "error", err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
