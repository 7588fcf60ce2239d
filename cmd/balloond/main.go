// Command balloond serves the ballooning pipeline over HTTP for interactive
// clients. It holds one current drawing session at a time, matching the
// one-operator workflow: upload a drawing, review the automatic balloons, add
// or reorder manually, undo, download.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/nayaruvi/balloonkit"
	"github.com/nayaruvi/balloonkit/model"
)

func main() {
	var (
		addr    string
		workDir string
	)
	flag.StringVar(&addr, "addr", ":8080", "Listen address")
	flag.StringVar(&workDir, "workdir", "", "Directory for uploaded drawings (default: a temp directory)")
	flag.Parse()

	logger := log.New(os.Stderr, "balloond: ", log.LstdFlags)

	if workDir == "" {
		dir, err := os.MkdirTemp("", "balloond")
		if err != nil {
			logger.Fatalf("creating work directory: %v", err)
		}
		workDir = dir
	}

	srv := &server{workDir: workDir, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/upload", srv.handleUpload)
	mux.HandleFunc("/balloons/manual", srv.handleManualBalloon)
	mux.HandleFunc("/rebuild", srv.handleRebuild)
	mux.HandleFunc("/undo", srv.handleUndo)
	mux.HandleFunc("/preview", srv.handlePreview)
	mux.HandleFunc("/download", srv.handleDownload)

	logger.Printf("listening on %s (work directory %s)", addr, workDir)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatalf("server: %v", err)
	}
}

// server holds the single current session. Uploading a new drawing replaces
// it; srv.mu guards the swap, while operations on the session itself are
// serialized by the session's own critical section.
type server struct {
	mu       sync.Mutex
	session  *balloonkit.Session
	fileName string
	workDir  string
	logger   *log.Logger
}

func (s *server) current() (*balloonkit.Session, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.fileName, s.session != nil
}

// annotateResponse is the payload for upload and rebuild.
type annotateResponse struct {
	FileName   string              `json:"file_name"`
	Dimensions []model.Candidate   `json:"dimensions"`
	Marks      []model.BalloonMark `json:"marks"`
	Tolerances map[string]float64  `json:"tolerances"`
	Warnings   []string            `json:"warnings,omitempty"`
	PageWidth  float64             `json:"page_width"`
	PageHeight float64             `json:"page_height"`
}

func (s *server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	name := filepath.Base(header.Filename)
	if name == "" || name == "." {
		name = "drawing.pdf"
	}
	path := filepath.Join(s.workDir, name)

	out, err := os.Create(path)
	if err != nil {
		s.logger.Printf("upload: creating %s: %v", path, err)
		writeError(w, http.StatusInternalServerError, "storing upload failed")
		return
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		s.logger.Printf("upload: writing %s: %v", path, err)
		writeError(w, http.StatusInternalServerError, "storing upload failed")
		return
	}
	out.Close()

	session, err := balloonkit.Open(path)
	if err != nil {
		s.writeKnownError(w, err)
		return
	}

	result, err := session.Annotate()
	if err != nil {
		s.writeKnownError(w, err)
		return
	}

	s.mu.Lock()
	s.session = session
	s.fileName = name
	s.mu.Unlock()

	pw, ph, err := session.PageSize(0)
	if err != nil {
		s.writeKnownError(w, err)
		return
	}

	s.logger.Printf("upload: %s, %d dimensions, %d tolerance classes",
		name, len(result.Dimensions), len(result.Tolerances))
	writeJSON(w, http.StatusOK, annotateResponse{
		FileName:   name,
		Dimensions: result.Dimensions,
		Marks:      result.Marks,
		Tolerances: tolerancesJSON(result),
		Warnings:   warningStrings(result.Warnings),
		PageWidth:  pw,
		PageHeight: ph,
	})
}

func (s *server) handleManualBalloon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	session, _, ok := s.current()
	if !ok {
		writeError(w, http.StatusNotFound, "no drawing uploaded")
		return
	}

	var req struct {
		Page int     `json:"page"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	mark, err := session.AddBalloonFraction(req.Page, req.X, req.Y)
	if err != nil {
		s.writeKnownError(w, err)
		return
	}

	s.logger.Printf("manual balloon %d at (%.3f, %.3f) on page %d", mark.Index, req.X, req.Y, req.Page)
	writeJSON(w, http.StatusOK, mark)
}

func (s *server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	session, name, ok := s.current()
	if !ok {
		writeError(w, http.StatusNotFound, "no drawing uploaded")
		return
	}

	var req struct {
		Anchors []model.Candidate `json:"anchors"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := session.Rebuild(req.Anchors)
	if err != nil {
		s.writeKnownError(w, err)
		return
	}

	pw, ph, err := session.PageSize(0)
	if err != nil {
		s.writeKnownError(w, err)
		return
	}

	s.logger.Printf("rebuild: %d balloons", len(result.Marks))
	writeJSON(w, http.StatusOK, annotateResponse{
		FileName:   name,
		Dimensions: result.Dimensions,
		Marks:      result.Marks,
		Tolerances: tolerancesJSON(result),
		Warnings:   warningStrings(result.Warnings),
		PageWidth:  pw,
		PageHeight: ph,
	})
}

func (s *server) handleUndo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	session, _, ok := s.current()
	if !ok {
		writeError(w, http.StatusNotFound, "no drawing uploaded")
		return
	}

	if err := session.Undo(); err != nil {
		s.writeKnownError(w, err)
		return
	}

	s.logger.Printf("undo: %d snapshots remain", session.HistoryLen())
	writeJSON(w, http.StatusOK, map[string]any{
		"marks":   session.Marks(),
		"history": session.HistoryLen(),
	})
}

func (s *server) handlePreview(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, "inline")
}

func (s *server) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, "attachment")
}

func (s *server) serveDocument(w http.ResponseWriter, r *http.Request, disposition string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	session, name, ok := s.current()
	if !ok {
		writeError(w, http.StatusNotFound, "no drawing uploaded")
		return
	}

	data, err := session.DocumentBytes()
	if err != nil {
		s.writeKnownError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// writeKnownError maps the library's sentinel errors onto HTTP statuses.
func (s *server) writeKnownError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, balloonkit.ErrInvalidAnchor):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, balloonkit.ErrUnreadableDocument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, balloonkit.ErrNoAnnotatedDocument):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, balloonkit.ErrNothingToUndo):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func tolerancesJSON(result *balloonkit.Result) map[string]float64 {
	out := make(map[string]float64, len(result.Tolerances))
	for class, value := range result.Tolerances {
		out[string(class)] = value
	}
	return out
}

func warningStrings(warnings []balloonkit.Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}
