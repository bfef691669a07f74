package web

import (
	"io"
	"net/http"
	"time"

	"github.com/antiquecw/importgen/internal/core"
	"github.com/antiquecw/importgen/internal/logging"
	"github.com/antiquecw/importgen/internal/tabular"
	mw "github.com/antiquecw/importgen/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// RunResponse is the JSON summary of a completed conversion run.
type RunResponse struct {
	RunID string         `json:"run_id"`
	Rows  int            `json:"rows"`
	Files []FileResponse `json:"files"`
}

// FileResponse describes one downloadable output table.
type FileResponse struct {
	Table    string `json:"table"`
	Label    string `json:"label"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
	Rows     int    `json:"rows"`
}

// tableKeys maps the download URL segment to a bundle table. The keys
// are part of the UI contract.
var tableKeys = []string{"netsuite", "shopify", "inventory"}

func bundleTable(b *core.Bundle, key string) (*core.Table, bool) {
	switch key {
	case "netsuite":
		return &b.NetsuiteItems, true
	case "shopify":
		return &b.ShopifyProducts, true
	case "inventory":
		return &b.InventoryAdjustments, true
	default:
		return nil, false
	}
}

// handleIndex serves the upload page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "static/index.html")
}

// handleLoginPage serves the password gate.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "static/login.html")
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, name string) {
	data, err := staticFiles.ReadFile(name)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// handleLogin checks the submitted password against the shared secret
// and opens a session on success.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?err=1", http.StatusSeeOther)
		return
	}

	if !mw.SecretMatches(r.PostFormValue("password"), s.cfg.Auth.Password) {
		logging.FromContext(r.Context()).Warn("login rejected", "ip", r.RemoteAddr)
		http.Redirect(w, r, "/login?err=1", http.StatusSeeOther)
		return
	}

	token := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     mw.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.Auth.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout ends the current session.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(mw.SessionCookie); err == nil {
		s.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     mw.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleConvert accepts one spreadsheet upload, runs the conversion
// synchronously, stores the bundle, and returns the run summary with
// download URLs. The transform is all in-memory; nothing touches disk.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, errNoFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	cols, rows, err := tabular.Decode(header.Filename, data)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	bundle, err := core.Convert(cols, rows)
	if err != nil {
		s.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	runID := s.runs.Put(bundle)

	logging.FromContext(r.Context()).Info("conversion complete",
		"run_id", runID,
		"file", header.Filename,
		"rows", bundle.RowCount,
	)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, runSummary(runID, bundle))
}

// handleRun returns the JSON summary of a stored run.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")

	bundle, err := s.runs.Get(runID)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	render.JSON(w, r, runSummary(runID, bundle))
}

// handleDownload streams one generated table as a CSV attachment named
// by the dated convention, e.g. netsuite_import_08_23_26.csv.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	key := chi.URLParam(r, "table")

	bundle, err := s.runs.Get(runID)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	table, ok := bundleTable(bundle, key)
	if !ok {
		s.respondError(w, r, ErrRunNotFound, http.StatusNotFound)
		return
	}

	fileName := table.FileName(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)

	if err := table.WriteCSV(w); err != nil {
		// Headers are already out; log and give up on this response.
		logging.FromContext(r.Context()).Error("csv download failed",
			"run_id", runID, "table", key, "error", err)
	}
}

func runSummary(runID string, b *core.Bundle) RunResponse {
	resp := RunResponse{
		RunID: runID,
		Rows:  b.RowCount,
	}
	now := time.Now()
	for _, key := range tableKeys {
		table, _ := bundleTable(b, key)
		resp.Files = append(resp.Files, FileResponse{
			Table:    key,
			Label:    table.Name,
			FileName: table.FileName(now),
			URL:      "/download/" + runID + "/" + key,
			Rows:     len(table.Rows),
		})
	}
	return resp
}
