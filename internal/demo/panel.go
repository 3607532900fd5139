package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// State is the demo panel's display state.
type State int

const (
	// StateEmpty shows the upload form.
	StateEmpty State = iota
	// StateProcessing shows the spinner; the upload button is disabled.
	StateProcessing
	// StateResult shows the extracted text and metadata tabs.
	StateResult
	// StateFailed shows the upload form with an error message.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateProcessing:
		return "processing"
	case StateResult:
		return "result"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// View is an immutable snapshot of the panel for rendering.
type View struct {
	State    State
	FileName string
	Result   *DocumentContent
	Error    string
	Notice   string
	Accept   string
}

// Panel holds the transient upload/result state of one demo panel.
// It is safe for concurrent use.
type Panel struct {
	mu        sync.Mutex
	state     State
	fileName  string
	result    *DocumentContent
	errMsg    string
	notice    string
	accept    []string
	observers []func(State)
	logger    *zap.Logger
}

// PanelOption configures a Panel.
type PanelOption func(*Panel)

// WithAccept restricts uploads to file names matching patterns.
func WithAccept(patterns []string) PanelOption {
	return func(p *Panel) { p.accept = append([]string(nil), patterns...) }
}

// WithLogger sets the logger used to report failed uploads.
func WithLogger(l *zap.Logger) PanelOption {
	return func(p *Panel) { p.logger = l }
}

// NewPanel creates an empty panel.
func NewPanel(opts ...PanelOption) *Panel {
	p := &Panel{
		state:  StateEmpty,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OnChange registers fn to be called after every state transition.
// Observers run synchronously, outside the panel lock.
func (p *Panel) OnChange(fn func(State)) {
	p.mu.Lock()
	p.observers = append(p.observers, fn)
	p.mu.Unlock()
}

// State returns the current state.
func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// View returns a snapshot of the panel for rendering.
func (p *Panel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return View{
		State:    p.state,
		FileName: p.fileName,
		Result:   p.result,
		Error:    p.errMsg,
		Notice:   p.notice,
		Accept:   AcceptAttr(p.accept),
	}
}

// Upload sends the selected file to parser. The panel always passes
// through StateProcessing before the parser is called, and always leaves
// it once the parser returns. A file that does not match the accept list
// is treated as not selected: the panel keeps its state and records a notice.
func (p *Panel) Upload(ctx context.Context, parser Parser, fileName string, r io.Reader) error {
	if fileName == "" || r == nil {
		return ErrNoFile
	}

	p.mu.Lock()
	if p.state == StateProcessing {
		p.mu.Unlock()
		return ErrBusy
	}
	if len(p.accept) > 0 && !Accepts(fileName, p.accept) {
		p.notice = fmt.Sprintf("%s is not a supported format.", BaseName(fileName))
		p.mu.Unlock()
		return ErrUnsupportedFormat
	}
	p.state = StateProcessing
	p.fileName = BaseName(fileName)
	p.result = nil
	p.errMsg = ""
	p.notice = ""
	p.mu.Unlock()
	p.notify(StateProcessing)

	doc, err := parser.Parse(ctx, fileName, r)

	p.mu.Lock()
	if err != nil {
		p.state = StateFailed
		p.errMsg = UserMessage(err)
	} else {
		p.state = StateResult
		p.result = doc
	}
	next := p.state
	p.mu.Unlock()

	if err != nil {
		p.logger.Error("processing document", zap.String("file", BaseName(fileName)), zap.Error(err))
	}
	p.notify(next)
	return err
}

// Reset discards any result or error and returns to StateEmpty.
// Resetting while a document is processing is ignored.
func (p *Panel) Reset() {
	p.mu.Lock()
	if p.state == StateProcessing {
		p.mu.Unlock()
		return
	}
	p.state = StateEmpty
	p.fileName = ""
	p.result = nil
	p.errMsg = ""
	p.notice = ""
	p.mu.Unlock()
	p.notify(StateEmpty)
}

func (p *Panel) notify(s State) {
	p.mu.Lock()
	observers := make([]func(State), len(p.observers))
	copy(observers, p.observers)
	p.mu.Unlock()
	for _, fn := range observers {
		fn(s)
	}
}

// UserMessage converts an upload error into a message fit for display.
func UserMessage(err error) string {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoEndpoint):
		return "The live demo is not configured on this site."
	case errors.Is(err, ErrUnsupportedFormat):
		return "This file format is not supported. Try PDF, DOCX, DOC, PPT, PPTX or TXT."
	case errors.Is(err, ErrNoFile):
		return "Choose a file to upload."
	case errors.Is(err, ErrBusy):
		return "A document is already being processed."
	case errors.Is(err, context.DeadlineExceeded):
		return "Processing timed out. Try a smaller document."
	case errors.As(err, &upstream):
		if upstream.StatusCode >= 400 && upstream.StatusCode < 500 && upstream.Message != "" {
			return "The document could not be processed: " + upstream.Message
		}
		return fmt.Sprintf("The document could not be processed (status %d).", upstream.StatusCode)
	default:
		return "Something went wrong while processing the document. Please try again."
	}
}
