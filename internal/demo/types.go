// Package demo implements the live demo panel: it forwards one uploaded
// document to an external parse endpoint and holds the returned text and
// metadata for display.
package demo

import (
	"errors"
	"fmt"
	"strconv"
)

// DocumentContent is the result returned by the parse endpoint.
type DocumentContent struct {
	Text     string    `json:"text"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Metadata holds document statistics. Every field is optional.
type Metadata struct {
	Pages      *int    `json:"pages,omitempty"`
	Words      *int    `json:"words,omitempty"`
	Characters *int    `json:"characters,omitempty"`
	FileSize   *int64  `json:"fileSize,omitempty"`
	FileName   *string `json:"fileName,omitempty"`
}

// parseResponse is the envelope the parse endpoint replies with.
type parseResponse struct {
	Data  *DocumentContent `json:"data,omitempty"`
	Error string           `json:"error,omitempty"`
}

// missing is shown in place of absent metadata fields.
const missing = "—"

// Meta returns the metadata, or an empty value when none was returned.
func (d *DocumentContent) Meta() Metadata {
	if d == nil || d.Metadata == nil {
		return Metadata{}
	}
	return *d.Metadata
}

// PagesText formats the page count for display.
func (m Metadata) PagesText() string { return formatInt(m.Pages) }

// WordsText formats the word count for display.
func (m Metadata) WordsText() string { return formatInt(m.Words) }

// CharactersText formats the character count for display.
func (m Metadata) CharactersText() string { return formatInt(m.Characters) }

// FileSizeText formats the file size in bytes for display.
func (m Metadata) FileSizeText() string {
	if m.FileSize == nil {
		return missing
	}
	return strconv.FormatInt(*m.FileSize, 10) + " bytes"
}

// FileNameText returns the file name for display.
func (m Metadata) FileNameText() string {
	if m.FileName == nil || *m.FileName == "" {
		return missing
	}
	return *m.FileName
}

func formatInt(v *int) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

var (
	// ErrNoEndpoint is returned when no parse endpoint is configured.
	ErrNoEndpoint = errors.New("demo: no parse endpoint configured")
	// ErrUnsupportedFormat is returned for files outside the accept list.
	ErrUnsupportedFormat = errors.New("demo: unsupported file format")
	// ErrNoFile is returned when an upload carries no document.
	ErrNoFile = errors.New("demo: no file selected")
	// ErrBusy is returned when a file is selected while another is processing.
	ErrBusy = errors.New("demo: a document is already being processed")
	// ErrEmptyResponse is returned when the endpoint replies without data.
	ErrEmptyResponse = errors.New("demo: parse endpoint returned no data")
)

// UpstreamError reports a non-2xx reply from the parse endpoint.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("parse endpoint returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("parse endpoint returned %d", e.StatusCode)
}
