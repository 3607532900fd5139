package demo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func intPtr(v int) *int          { return &v }
func int64Ptr(v int64) *int64    { return &v }
func stringPtr(v string) *string { return &v }

func TestAccepts(t *testing.T) {
	patterns := []string{"*.pdf", "*.docx", "*.doc", "*.ppt", "*.pptx", "*.txt"}
	tests := []struct {
		name string
		want bool
	}{
		{"report.pdf", true},
		{"REPORT.PDF", true},
		{"slides.pptx", true},
		{"notes.txt", true},
		{`C:\fakepath\letter.docx`, true},
		{"/tmp/uploads/deck.ppt", true},
		{"image.png", false},
		{"archive.pdf.zip", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Accepts(tt.name, patterns); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAcceptsBraceGlob(t *testing.T) {
	if !Accepts("a.docx", []string{"*.{pdf,docx}"}) {
		t.Error("brace pattern should match docx")
	}
	if Accepts("a.txt", []string{"*.{pdf,docx}"}) {
		t.Error("brace pattern should not match txt")
	}
}

func TestAcceptAttr(t *testing.T) {
	got := AcceptAttr([]string{"*.pdf", "*.docx", "*.txt"})
	if got != ".pdf,.docx,.txt" {
		t.Errorf("AcceptAttr = %q", got)
	}
}

func TestMetadataText(t *testing.T) {
	full := Metadata{
		Pages:      intPtr(3),
		Words:      intPtr(1200),
		Characters: intPtr(7000),
		FileSize:   int64Ptr(2048),
		FileName:   stringPtr("report.pdf"),
	}
	if full.PagesText() != "3" || full.WordsText() != "1200" || full.CharactersText() != "7000" {
		t.Errorf("unexpected counts: %s %s %s", full.PagesText(), full.WordsText(), full.CharactersText())
	}
	if full.FileSizeText() != "2048 bytes" {
		t.Errorf("FileSizeText = %q", full.FileSizeText())
	}
	if full.FileNameText() != "report.pdf" {
		t.Errorf("FileNameText = %q", full.FileNameText())
	}

	var empty Metadata
	for _, s := range []string{empty.PagesText(), empty.WordsText(), empty.CharactersText(), empty.FileSizeText(), empty.FileNameText()} {
		if s != missing {
			t.Errorf("absent field rendered as %q, want %q", s, missing)
		}
	}
}

func TestDocumentContentJSONOmitsAbsentMetadata(t *testing.T) {
	var doc DocumentContent
	if err := json.Unmarshal([]byte(`{"text":"hello","metadata":{"words":1}}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Meta().WordsText() != "1" || doc.Meta().Pages != nil {
		t.Errorf("unexpected metadata: %+v", doc.Meta())
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "pages") {
		t.Errorf("absent field serialized: %s", out)
	}

	var nilDoc *DocumentContent
	if nilDoc.Meta().Words != nil {
		t.Error("nil document should have empty metadata")
	}
}

// parseServer returns a test endpoint that checks the multipart upload.
func parseServer(t *testing.T, status int, body string) (*httptest.Server, <-chan http.Header) {
	t.Helper()
	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		file, header, err := r.FormFile(FormField)
		if err != nil {
			t.Errorf("missing %q field: %v", FormField, err)
		} else {
			data, _ := io.ReadAll(file)
			if string(data) != "hello world" {
				t.Errorf("uploaded body = %q", data)
			}
			if header.Filename != "hello.txt" {
				t.Errorf("uploaded filename = %q", header.Filename)
			}
		}
		headers <- r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, headers
}

func TestHTTPParserSuccess(t *testing.T) {
	srv, headers := parseServer(t, http.StatusOK,
		`{"data":{"text":"hello world","metadata":{"pages":1,"words":2,"characters":11,"fileSize":11,"fileName":"hello.txt"}}}`)

	p := NewHTTPParser(srv.URL, 5*time.Second)
	ctx := WithRequestID(context.Background(), "req-123")
	doc, err := p.Parse(ctx, `C:\fakepath\hello.txt`, strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Text != "hello world" {
		t.Errorf("text = %q", doc.Text)
	}
	if doc.Meta().WordsText() != "2" || doc.Meta().FileNameText() != "hello.txt" {
		t.Errorf("metadata = %+v", doc.Meta())
	}
	if got := (<-headers).Get(RequestIDHeader); got != "req-123" {
		t.Errorf("request id = %q, want req-123", got)
	}
}

func TestHTTPParserGeneratesRequestID(t *testing.T) {
	srv, headers := parseServer(t, http.StatusOK, `{"data":{"text":"x"}}`)

	p := NewHTTPParser(srv.URL, 0)
	if _, err := p.Parse(context.Background(), "hello.txt", strings.NewReader("hello world")); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if (<-headers).Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}
}

func TestHTTPParserUpstreamError(t *testing.T) {
	srv, _ := parseServer(t, http.StatusUnprocessableEntity, `{"error":"corrupt file"}`)

	p := NewHTTPParser(srv.URL, 5*time.Second)
	_, err := p.Parse(context.Background(), "hello.txt", strings.NewReader("hello world"))

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusUnprocessableEntity || upstream.Message != "corrupt file" {
		t.Errorf("upstream = %+v", upstream)
	}
	if msg := UserMessage(err); !strings.Contains(msg, "corrupt file") {
		t.Errorf("user message = %q", msg)
	}
}

func TestHTTPParserNonJSONError(t *testing.T) {
	srv, _ := parseServer(t, http.StatusBadGateway, "bad gateway")

	p := NewHTTPParser(srv.URL, 5*time.Second)
	_, err := p.Parse(context.Background(), "hello.txt", strings.NewReader("hello world"))

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if upstream.Message != "bad gateway" {
		t.Errorf("message = %q", upstream.Message)
	}
	if msg := UserMessage(err); !strings.Contains(msg, "502") {
		t.Errorf("user message = %q", msg)
	}
}

func TestHTTPParserMissingData(t *testing.T) {
	srv, _ := parseServer(t, http.StatusOK, `{}`)

	p := NewHTTPParser(srv.URL, 5*time.Second)
	_, err := p.Parse(context.Background(), "hello.txt", strings.NewReader("hello world"))
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestHTTPParserNoEndpoint(t *testing.T) {
	p := NewHTTPParser("", 0)
	_, err := p.Parse(context.Background(), "a.pdf", strings.NewReader("x"))
	if !errors.Is(err, ErrNoEndpoint) {
		t.Errorf("expected ErrNoEndpoint, got %v", err)
	}
}

// stubParser is a Parser with a fixed reply. When gate is set, Parse blocks
// until it is closed.
type stubParser struct {
	doc     *DocumentContent
	err     error
	gate    chan struct{}
	entered chan struct{}
	calls   int
}

func (s *stubParser) Parse(ctx context.Context, fileName string, r io.Reader) (*DocumentContent, error) {
	s.calls++
	if s.entered != nil {
		close(s.entered)
	}
	if s.gate != nil {
		<-s.gate
	}
	return s.doc, s.err
}

// recorder collects panel transitions.
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) record(s State) {
	r.mu.Lock()
	r.states = append(r.states, s)
	r.mu.Unlock()
}

func (r *recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	parts := make([]string, len(r.states))
	for i, s := range r.states {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func TestPanelLifecycle(t *testing.T) {
	panel := NewPanel(WithAccept([]string{"*.pdf"}))
	rec := &recorder{}
	panel.OnChange(rec.record)

	if panel.State() != StateEmpty {
		t.Fatalf("initial state = %s, want empty", panel.State())
	}

	parser := &stubParser{doc: &DocumentContent{Text: "extracted", Metadata: &Metadata{Words: intPtr(1)}}}
	if err := panel.Upload(context.Background(), parser, "report.pdf", strings.NewReader("%PDF")); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	view := panel.View()
	if view.State != StateResult {
		t.Fatalf("state = %s, want result", view.State)
	}
	if view.Result.Text != "extracted" || view.FileName != "report.pdf" {
		t.Errorf("view = %+v", view)
	}
	if view.Accept != ".pdf" {
		t.Errorf("accept = %q", view.Accept)
	}

	panel.Reset()
	if panel.State() != StateEmpty || panel.View().Result != nil {
		t.Errorf("reset did not clear the result")
	}

	if got := rec.String(); got != "processing,result,empty" {
		t.Errorf("transitions = %s, want processing,result,empty", got)
	}
}

func TestPanelNotifiesEveryObserver(t *testing.T) {
	panel := NewPanel()
	first, second := &recorder{}, &recorder{}
	panel.OnChange(first.record)
	panel.OnChange(second.record)

	parser := &stubParser{err: errors.New("boom")}
	panel.Upload(context.Background(), parser, "a.txt", strings.NewReader("x"))
	panel.Reset()

	for i, rec := range []*recorder{first, second} {
		if got := rec.String(); got != "processing,failed,empty" {
			t.Errorf("observer %d saw %s, want processing,failed,empty", i, got)
		}
	}
}

func TestPanelEntersProcessingBeforeParsing(t *testing.T) {
	panel := NewPanel()

	var stateDuringParse State
	wrapped := parserFunc(func(ctx context.Context, name string, r io.Reader) (*DocumentContent, error) {
		stateDuringParse = panel.State()
		return &DocumentContent{Text: "x"}, nil
	})

	if err := panel.Upload(context.Background(), wrapped, "a.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if stateDuringParse != StateProcessing {
		t.Errorf("state during parse = %s, want processing", stateDuringParse)
	}
}

type parserFunc func(ctx context.Context, name string, r io.Reader) (*DocumentContent, error)

func (f parserFunc) Parse(ctx context.Context, name string, r io.Reader) (*DocumentContent, error) {
	return f(ctx, name, r)
}

func TestPanelFailureSurfacesMessage(t *testing.T) {
	panel := NewPanel()
	rec := &recorder{}
	panel.OnChange(rec.record)

	parser := &stubParser{err: &UpstreamError{StatusCode: http.StatusInternalServerError}}
	err := panel.Upload(context.Background(), parser, "a.pdf", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error")
	}

	view := panel.View()
	if view.State != StateFailed {
		t.Fatalf("state = %s, want failed", view.State)
	}
	if !strings.Contains(view.Error, "status 500") {
		t.Errorf("error message = %q", view.Error)
	}
	if got := rec.String(); got != "processing,failed" {
		t.Errorf("transitions = %s", got)
	}

	// A failed panel accepts another upload.
	parser.err = nil
	parser.doc = &DocumentContent{Text: "ok"}
	if err := panel.Upload(context.Background(), parser, "a.pdf", strings.NewReader("x")); err != nil {
		t.Fatalf("retry Upload: %v", err)
	}
	if panel.View().Error != "" {
		t.Error("retry should clear the previous error")
	}
}

func TestPanelRejectsUnsupportedFormat(t *testing.T) {
	panel := NewPanel(WithAccept([]string{"*.pdf", "*.txt"}))
	rec := &recorder{}
	panel.OnChange(rec.record)
	parser := &stubParser{doc: &DocumentContent{}}

	err := panel.Upload(context.Background(), parser, "photo.png", strings.NewReader("x"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if parser.calls != 0 {
		t.Error("parser should not be called for unsupported files")
	}
	if panel.State() != StateEmpty {
		t.Errorf("state = %s, want empty", panel.State())
	}
	if !strings.Contains(panel.View().Notice, "photo.png") {
		t.Errorf("notice = %q", panel.View().Notice)
	}
	if rec.String() != "" {
		t.Errorf("unexpected transitions: %s", rec.String())
	}
}

func TestPanelNoFile(t *testing.T) {
	panel := NewPanel()
	if err := panel.Upload(context.Background(), &stubParser{}, "", nil); !errors.Is(err, ErrNoFile) {
		t.Errorf("expected ErrNoFile, got %v", err)
	}
	if panel.State() != StateEmpty {
		t.Errorf("state = %s, want empty", panel.State())
	}
}

func TestPanelBusyWhileProcessing(t *testing.T) {
	panel := NewPanel()
	parser := &stubParser{
		doc:     &DocumentContent{Text: "slow"},
		gate:    make(chan struct{}),
		entered: make(chan struct{}),
	}

	done := make(chan error, 1)
	go func() {
		done <- panel.Upload(context.Background(), parser, "a.pdf", strings.NewReader("x"))
	}()
	<-parser.entered

	if err := panel.Upload(context.Background(), &stubParser{}, "b.pdf", strings.NewReader("y")); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	// Reset is ignored while processing.
	panel.Reset()
	if panel.State() != StateProcessing {
		t.Errorf("state = %s, want processing", panel.State())
	}

	close(parser.gate)
	if err := <-done; err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if panel.State() != StateResult {
		t.Errorf("state = %s, want result", panel.State())
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrNoEndpoint, "not configured"},
		{ErrUnsupportedFormat, "not supported"},
		{context.DeadlineExceeded, "timed out"},
		{errors.New("boom"), "Something went wrong"},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); !strings.Contains(got, tt.want) {
			t.Errorf("UserMessage(%v) = %q, want substring %q", tt.err, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateProcessing.String() != "processing" {
		t.Errorf("String() = %q", StateProcessing.String())
	}
	if State(42).String() != "State(42)" {
		t.Errorf("unknown state String() = %q", State(42).String())
	}
}
