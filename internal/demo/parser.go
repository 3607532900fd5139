package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FormField is the multipart field that carries the uploaded document.
const FormField = "document"

// RequestIDHeader correlates a forwarded upload with server logs.
const RequestIDHeader = "X-Request-ID"

// maxResponseBytes caps how much of the endpoint's reply is read.
const maxResponseBytes = 32 << 20

// Parser turns an uploaded document into text and metadata.
type Parser interface {
	Parse(ctx context.Context, fileName string, r io.Reader) (*DocumentContent, error)
}

// HTTPParser forwards documents to an external parse endpoint as a
// multipart POST and decodes its {"data": ...} reply.
type HTTPParser struct {
	endpoint string
	client   *http.Client
}

// NewHTTPParser creates a parser for the given endpoint. A zero timeout
// means no client-side deadline beyond the request context.
func NewHTTPParser(endpoint string, timeout time.Duration) *HTTPParser {
	return &HTTPParser{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Parse uploads the document and returns the extracted content.
func (p *HTTPParser) Parse(ctx context.Context, fileName string, r io.Reader) (*DocumentContent, error) {
	if p.endpoint == "" {
		return nil, ErrNoEndpoint
	}

	body, contentType, err := encodeUpload(fileName, r)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating parse request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID(ctx))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending parse request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading parse response: %w", err)
	}

	var out parseResponse
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(out.Error)
		if decodeErr != nil {
			msg = truncate(strings.TrimSpace(string(raw)), 200)
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decoding parse response: %w", decodeErr)
	}
	if out.Data == nil {
		return nil, ErrEmptyResponse
	}
	return out.Data, nil
}

// encodeUpload builds the multipart body with the document under FormField.
func encodeUpload(fileName string, r io.Reader) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(FormField, BaseName(fileName))
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("copying upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

type requestIDKey struct{}

// WithRequestID attaches an upload id to ctx so the forwarded request
// carries the same id as the inbound one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
