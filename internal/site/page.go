package site

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/HaiderNakara/doc-extract-web/internal/config"
	"github.com/HaiderNakara/doc-extract-web/internal/content"
	"github.com/HaiderNakara/doc-extract-web/internal/demo"
)

// SectionKind names a block of the page.
type SectionKind string

const (
	SectionHeader        SectionKind = "header"
	SectionHero          SectionKind = "hero"
	SectionFeatures      SectionKind = "features"
	SectionDocumentation SectionKind = "documentation"
	SectionExamples      SectionKind = "examples"
	SectionDemo          SectionKind = "demo"
	SectionFooter        SectionKind = "footer"
)

// LandingSections is the fixed top-to-bottom order of the landing page.
var LandingSections = []SectionKind{
	SectionHeader,
	SectionHero,
	SectionFeatures,
	SectionDocumentation,
	SectionExamples,
	SectionFooter,
}

// DemoSections is the order of the live demo page.
var DemoSections = []SectionKind{
	SectionHeader,
	SectionDemo,
	SectionFooter,
}

// Tab group ids. They double as query parameter names on the server.
const (
	GroupDocs     = "docs"
	GroupExamples = "example"
)

// Routes are the URLs pages link to. They differ between the static build
// and the dev server.
type Routes struct {
	Home       string
	Demo       string
	DemoUpload string
	DemoReset  string
	ParseAPI   string
	Assets     string
	LiveReload string
}

// StaticRoutes returns relative links for a site written to disk. The
// browser uploads straight to endpoint; with no endpoint the demo is shown
// as unavailable. There is no form fallback since static hosts reject POST.
func StaticRoutes(endpoint string) Routes {
	return Routes{
		Home:      "index.html",
		Demo:      "demo.html",
		DemoReset: "demo.html",
		ParseAPI:  endpoint,
		Assets:    "",
	}
}

// ServerRoutes returns the routes served by `serve`.
func ServerRoutes() Routes {
	return Routes{
		Home:       "/",
		Demo:       "/demo",
		DemoUpload: "/demo",
		DemoReset:  "/demo/reset",
		ParseAPI:   "/api/parse",
		Assets:     "/",
		LiveReload: "/ws/reload",
	}
}

// RenderedSample is a code sample with its highlighted HTML.
type RenderedSample struct {
	content.CodeSample
	HTML template.HTML
}

// DocPanel is one documentation tab ready for rendering.
type DocPanel struct {
	content.DocTab
	Rendered []RenderedSample
}

// ExamplePanel is one example tab ready for rendering.
type ExamplePanel struct {
	content.Example
	HTML template.HTML
}

// DemoPanel is the demo section ready for rendering.
type DemoPanel struct {
	demo.View
	Meta demo.Metadata
	// Unavailable is set when the page has nowhere to send uploads.
	Unavailable bool
}

// Processing reports whether the spinner is shown.
func (d *DemoPanel) Processing() bool { return d.State == demo.StateProcessing }

// Disabled reports whether the file input is inactive.
func (d *DemoPanel) Disabled() bool { return d.Processing() || d.Unavailable }

// HasResult reports whether the result tabs are shown.
func (d *DemoPanel) HasResult() bool { return d.State == demo.StateResult && d.View.Result != nil }

// Page is the template data for one rendered page.
type Page struct {
	Title      string
	Brand      string
	Package    string
	Sections   []SectionKind
	Routes     Routes
	Nav        []content.Link
	Links      config.LinksConfig
	Hero       content.HeroContent
	Features   []content.Feature
	Stats      []content.Stat
	Docs       *TabGroup
	DocPanels  []DocPanel
	Examples   *TabGroup
	ExPanels   []ExamplePanel
	Demo       *DemoPanel
	Footer     content.FooterContent
	Year       int
	LiveReload bool
}

// TabHref links to the landing page with tab id selected in group while
// keeping the other group's current selection.
func (p *Page) TabHref(group, id string) string {
	q := url.Values{}
	if p.Docs != nil {
		q.Set(GroupDocs, p.Docs.Active)
	}
	if p.Examples != nil {
		q.Set(GroupExamples, p.Examples.Active)
	}
	q.Set(group, id)
	return p.Routes.Home + "?" + q.Encode()
}

// Site composes and renders pages for one configuration.
type Site struct {
	cfg        *config.Config
	routes     Routes
	tmpl       *template.Template
	hl         *Highlighter
	now        func() time.Time
	liveReload bool
}

// Option configures a Site.
type Option func(*Site)

// WithRoutes overrides the link targets.
func WithRoutes(r Routes) Option {
	return func(s *Site) { s.routes = r }
}

// WithClock sets the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(s *Site) { s.now = now }
}

// WithLiveReload makes pages connect to the live-reload websocket.
func WithLiveReload(on bool) Option {
	return func(s *Site) { s.liveReload = on }
}

// New parses the page templates and returns a Site for cfg.
func New(cfg *config.Config, opts ...Option) (*Site, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s := &Site{
		cfg:    cfg,
		routes: StaticRoutes(cfg.Demo.Endpoint),
		tmpl:   tmpl,
		hl:     NewHighlighter("github"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the configuration the site was built from.
func (s *Site) Config() *config.Config { return s.cfg }

// Landing composes the landing page. Empty tab ids select the defaults;
// unknown ids return ErrUnknownTab.
func (s *Site) Landing(docTab, example string) (*Page, error) {
	p := s.base(LandingSections)
	p.Hero = content.Hero(s.cfg.Site.Title, s.cfg.Site.Version, s.cfg.Site.Package)
	p.Features = content.Features()
	p.Stats = content.Stats()

	docs := content.DocTabs(s.cfg.Site.Package)
	docTabs := make([]Tab, len(docs))
	p.DocPanels = make([]DocPanel, len(docs))
	for i, d := range docs {
		docTabs[i] = Tab{ID: d.ID, Label: d.Label}
		panel := DocPanel{DocTab: d}
		for _, sample := range d.Samples {
			html, err := s.hl.Highlight(sample.Language, sample.Code)
			if err != nil {
				return nil, err
			}
			panel.Rendered = append(panel.Rendered, RenderedSample{CodeSample: sample, HTML: html})
		}
		p.DocPanels[i] = panel
	}
	p.Docs = NewTabGroup(GroupDocs, docTabs, content.DefaultDocTab)

	examples := content.Examples()
	exTabs := make([]Tab, len(examples))
	p.ExPanels = make([]ExamplePanel, len(examples))
	for i, ex := range examples {
		exTabs[i] = Tab{ID: ex.ID, Label: ex.Label(), Icon: ex.Icon}
		html, err := s.hl.Highlight(ex.Language, ex.Code)
		if err != nil {
			return nil, err
		}
		p.ExPanels[i] = ExamplePanel{Example: ex, HTML: html}
	}
	p.Examples = NewTabGroup(GroupExamples, exTabs, content.DefaultExample)

	if docTab != "" {
		if err := p.Docs.Select(docTab); err != nil {
			return nil, err
		}
	}
	if example != "" {
		if err := p.Examples.Select(example); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DemoPage composes the live demo page for the given panel snapshot.
func (s *Site) DemoPage(view demo.View) *Page {
	p := s.base(DemoSections)
	p.Title = "Try It Live — " + s.cfg.Site.Title
	d := &DemoPanel{View: view, Meta: view.Result.Meta()}
	if s.routes.ParseAPI == "" {
		d.Unavailable = true
		if d.State == demo.StateEmpty && d.Error == "" {
			d.Error = demo.UserMessage(demo.ErrNoEndpoint)
		}
	}
	p.Demo = d
	return p
}

func (s *Site) base(sections []SectionKind) *Page {
	footer := content.Footer(s.cfg.Site.Title)
	if s.cfg.Links.GitHub != "" {
		footer.Social = append(footer.Social, content.Link{Label: "GitHub", Href: s.cfg.Links.GitHub, Icon: content.IconGitHub, External: true})
	}
	if s.cfg.Links.LinkedIn != "" {
		footer.Social = append(footer.Social, content.Link{Label: "LinkedIn", Href: s.cfg.Links.LinkedIn, Icon: content.IconLinkedIn, External: true})
	}

	nav := content.Nav()
	for i := range nav {
		nav[i].Href = s.routes.Home + nav[i].Href
	}
	nav = append(nav, content.Link{Label: "Live Demo", Href: s.routes.Demo})

	return &Page{
		Title:      s.cfg.Site.Title,
		Brand:      s.cfg.Site.Title,
		Package:    s.cfg.Site.Package,
		Sections:   sections,
		Routes:     s.routes,
		Nav:        nav,
		Links:      s.cfg.Links,
		Footer:     footer,
		Year:       s.now().Year(),
		LiveReload: s.liveReload && s.routes.LiveReload != "",
	}
}

// Render writes page p as a complete HTML document.
func (s *Site) Render(w io.Writer, p *Page) error {
	if err := s.tmpl.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
