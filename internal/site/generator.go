package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HaiderNakara/doc-extract-web/internal/demo"
	"github.com/HaiderNakara/doc-extract-web/internal/progress"
)

// Generator writes the site as static files.
type Generator struct {
	Site      *Site
	OutputDir string
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator writing into outputDir. A nil reporter
// stays silent.
func NewGenerator(s *Site, outputDir string, reporter progress.Reporter) *Generator {
	if reporter == nil {
		reporter = progress.Discard
	}
	return &Generator{
		Site:      s,
		OutputDir: outputDir,
		Reporter:  reporter,
	}
}

type artifact struct {
	name   string
	render func() ([]byte, error)
}

// Generate builds every page and asset. Returns the paths written.
func (g *Generator) Generate() ([]string, error) {
	artifacts := []artifact{
		{"index.html", g.landing},
		{"demo.html", g.demo},
		{"style.css", staticAsset("style.css")},
		{"script.js", staticAsset("script.js")},
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	g.Reporter.Start(len(artifacts))
	defer g.Reporter.Finish()

	written := make([]string, 0, len(artifacts))
	for i, a := range artifacts {
		data, err := a.render()
		if err != nil {
			return written, fmt.Errorf("rendering %s: %w", a.name, err)
		}
		outPath := filepath.Join(g.OutputDir, a.name)
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", a.name, err)
		}
		written = append(written, outPath)
		g.Reporter.Update(i+1, a.name)
	}
	return written, nil
}

func (g *Generator) landing() ([]byte, error) {
	p, err := g.Site.Landing("", "")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := g.Site.Render(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) demo() ([]byte, error) {
	cfg := g.Site.Config()
	view := demo.NewPanel(demo.WithAccept(cfg.Demo.Accept)).View()
	var buf bytes.Buffer
	if err := g.Site.Render(&buf, g.Site.DemoPage(view)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func staticAsset(name string) func() ([]byte, error) {
	return func() ([]byte, error) {
		body, _, ok := Asset(name)
		if !ok {
			return nil, fmt.Errorf("unknown asset %s", name)
		}
		return body, nil
	}
}
