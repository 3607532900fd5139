package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/HaiderNakara/doc-extract-web/internal/config"
	"github.com/HaiderNakara/doc-extract-web/internal/demo"
	"github.com/HaiderNakara/doc-extract-web/internal/site"
)

// multipartOverhead is allowed on top of the upload limit for the
// multipart envelope.
const multipartOverhead = 1 << 20

// parseResponse is the body of /api/parse replies.
type parseResponse struct {
	Data  *demo.DocumentContent `json:"data,omitempty"`
	Error string                `json:"error,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, st, _ := s.current()
	q := r.URL.Query()
	page, err := st.Landing(q.Get(site.GroupDocs), q.Get(site.GroupExamples))
	if errors.Is(err, site.ErrUnknownTab) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.renderPage(w, r, st, page, http.StatusOK)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	cfg, st, _ := s.current()
	view := s.newPanel(cfg).View()
	s.renderPage(w, r, st, st.DemoPage(view), http.StatusOK)
}

// handleDemoUpload renders the demo page for a form post without script.
func (s *Server) handleDemoUpload(w http.ResponseWriter, r *http.Request) {
	cfg, st, parser := s.current()
	panel := s.newPanel(cfg)

	file, header, status, err := s.readUpload(w, r, cfg)
	if err != nil {
		view := panel.View()
		view.State = demo.StateFailed
		view.Error = uploadMessage(err, cfg)
		s.renderPage(w, r, st, st.DemoPage(view), status)
		return
	}
	defer file.Close()

	status = http.StatusOK
	err = panel.Upload(s.parseContext(r), parser, header.Filename, file)
	switch {
	case errors.Is(err, demo.ErrUnsupportedFormat):
		status = http.StatusUnsupportedMediaType
	case err != nil:
		status = statusFor(err)
	}
	s.renderPage(w, r, st, st.DemoPage(panel.View()), status)
}

func (s *Server) handleDemoReset(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, site.ServerRoutes().Demo, http.StatusSeeOther)
}

func (s *Server) handleAsset(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, contentType, ok := site.Asset(name)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(body)
	}
}

// handleParse forwards one uploaded document to the parse endpoint.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	cfg, _, parser := s.current()

	file, header, status, err := s.readUpload(w, r, cfg)
	if err != nil {
		writeJSON(w, status, parseResponse{Error: uploadMessage(err, cfg)})
		return
	}
	defer file.Close()

	if !demo.Accepts(header.Filename, cfg.Demo.Accept) {
		writeJSON(w, http.StatusUnsupportedMediaType, parseResponse{Error: demo.UserMessage(demo.ErrUnsupportedFormat)})
		return
	}

	doc, err := parser.Parse(s.parseContext(r), header.Filename, file)
	if err != nil {
		s.logger.Error("parsing document",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("file", demo.BaseName(header.Filename)),
			zap.Error(err),
		)
		writeJSON(w, statusFor(err), parseResponse{Error: demo.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Data: doc})
}

// readUpload extracts the document field from a multipart request. On
// failure it returns the HTTP status to answer with.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request, cfg *config.Config) (multipart.File, *multipart.FileHeader, int, error) {
	limit := cfg.Demo.MaxUploadBytes()
	if r.ContentLength > limit+multipartOverhead {
		return nil, nil, http.StatusRequestEntityTooLarge, errTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(limit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, http.StatusRequestEntityTooLarge, errTooLarge
		}
		return nil, nil, http.StatusBadRequest, demo.ErrNoFile
	}
	file, header, err := r.FormFile(demo.FormField)
	if err != nil {
		return nil, nil, http.StatusBadRequest, demo.ErrNoFile
	}
	if header.Size > limit {
		file.Close()
		return nil, nil, http.StatusRequestEntityTooLarge, errTooLarge
	}
	return file, header, http.StatusOK, nil
}

var errTooLarge = errors.New("upload exceeds size limit")

func uploadMessage(err error, cfg *config.Config) string {
	if errors.Is(err, errTooLarge) {
		return fmt.Sprintf("The file is larger than the %d MB upload limit.", cfg.Demo.MaxUploadMB)
	}
	return demo.UserMessage(err)
}

// statusFor maps a parse failure to the status returned to the browser.
// Upstream errors, timeouts and bad replies are all gateway failures.
func statusFor(err error) int {
	switch {
	case errors.Is(err, demo.ErrNoEndpoint):
		return http.StatusServiceUnavailable
	case errors.Is(err, demo.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, demo.ErrNoFile):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) newPanel(cfg *config.Config) *demo.Panel {
	return demo.NewPanel(
		demo.WithAccept(cfg.Demo.Accept),
		demo.WithLogger(s.logger.With(zap.String("component", "demo"))),
	)
}

// parseContext carries the chi request id to the upstream request.
func (s *Server) parseContext(r *http.Request) context.Context {
	ctx := r.Context()
	if id := middleware.GetReqID(ctx); id != "" {
		ctx = demo.WithRequestID(ctx, id)
	}
	return ctx
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, st *site.Site, p *site.Page, status int) {
	var buf bytes.Buffer
	if err := st.Render(&buf, p); err != nil {
		s.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
