// Package server exposes the converter over HTTP: an upload form and a
// convert-and-download endpoint, mirroring the workflow the reporting
// teams already know.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cbcr-dev/cbcrgen/internal/config"
	"github.com/cbcr-dev/cbcrgen/internal/id"
	"github.com/cbcr-dev/cbcrgen/internal/importer"
	"github.com/cbcr-dev/cbcrgen/internal/report"
)

const (
	msgNoFile       = "No file selected"
	msgBadExtension = "Invalid file type. Please upload an Excel file (.xlsx or .xls)"
	msgParseFailure = "Error processing file: the workbook could not be read"
)

// Server handles uploads and hands them to the report pipeline. All
// request state lives on the stack; the only shared fields are the
// read-only configuration and the parser registry.
type Server struct {
	cfg      *config.Config
	registry *importer.Registry
	log      *slog.Logger
	now      func() time.Time
}

// New creates a Server. A nil logger disables request logging.
func New(cfg *config.Config, registry *importer.Registry, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{
		cfg:      cfg,
		registry: registry,
		log:      log,
		now:      time.Now,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleForm).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleConvert).Methods(http.MethodPost)
	r.Use(s.logRequests)
	return r
}

// ListenAndServe runs the upload service until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("listening", "addr", s.cfg.Server.Listen)
	return srv.ListenAndServe()
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, http.StatusOK, nil)
}

// handleConvert enforces the transport limits, parses the workbook, and
// either streams the finished document or re-renders the form with every
// validation message. The document is assembled fully in memory before
// the first response byte, so an aborted request never exposes partial
// output.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxSizeBytes)
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxSizeBytes); err != nil {
		s.renderForm(w, http.StatusRequestEntityTooLarge, []string{"Uploaded file is too large"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil || header.Filename == "" {
		s.renderForm(w, http.StatusBadRequest, []string{msgNoFile})
		return
	}
	defer file.Close()

	if !s.cfg.AllowsFilename(header.Filename) {
		s.renderForm(w, http.StatusBadRequest, []string{msgBadExtension})
		return
	}

	parser := s.registry.ForFilename(header.Filename)
	if parser == nil {
		s.renderForm(w, http.StatusBadRequest, []string{msgBadExtension})
		return
	}

	wb, err := parser.Parse(file)
	if err != nil {
		s.log.Warn("workbook parse failed", "filename", header.Filename, "error", err)
		s.renderForm(w, http.StatusUnprocessableEntity, []string{msgParseFailure})
		return
	}

	doc, problems := report.Convert(wb)
	if len(problems) > 0 {
		s.log.Info("upload rejected", "filename", header.Filename, "problems", len(problems))
		s.renderForm(w, http.StatusUnprocessableEntity, problems)
		return
	}

	name := id.ReportFilename(s.now())
	w.Header().Set("Content-Type", "application/xhtml+xml; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", fmt.Sprint(len(doc)))
	_, _ = w.Write([]byte(doc))
}

func (s *Server) renderForm(w http.ResponseWriter, status int, messages []string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := formTemplate.Execute(w, formData{Messages: messages}); err != nil {
		s.log.Error("rendering form", "error", err)
	}
}

// logRequests is the level-gated request log; the core pipeline itself
// stays silent.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
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
