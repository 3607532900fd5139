package site

import (
	"fmt"
	"html/template"
)

// parseTemplates builds the page template set.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"icon": renderIcon,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	for _, t := range []string{headerTemplate, heroTemplate, featuresTemplate, docsTemplate, examplesTemplate, demoTemplate, footerTemplate} {
		if _, err := tmpl.Parse(t); err != nil {
			return nil, fmt.Errorf("parsing section template: %w", err)
		}
	}
	return tmpl, nil
}

// pageTemplate lays out the sections in page order.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Hero.Tagline}}">
  <link rel="stylesheet" href="{{.Routes.Assets}}style.css">
</head>
<body>
{{- range .Sections}}
{{- if eq . "header"}}{{template "header" $}}
{{- else if eq . "hero"}}{{template "hero" $}}
{{- else if eq . "features"}}{{template "features" $}}
{{- else if eq . "documentation"}}{{template "documentation" $}}
{{- else if eq . "examples"}}{{template "examples" $}}
{{- else if eq . "demo"}}{{template "demo" $}}
{{- else if eq . "footer"}}{{template "footer" $}}
{{- end}}
{{- end}}
  <script src="{{.Routes.Assets}}script.js"{{if .LiveReload}} data-livereload="{{.Routes.LiveReload}}"{{end}}></script>
</body>
</html>`

const headerTemplate = `{{define "header"}}
  <header class="site-header">
    <div class="container header-inner">
      <a class="brand" href="{{.Routes.Home}}">{{icon "file-text" "brand-icon"}}<span>{{.Brand}}</span></a>
      <nav class="site-nav">
        {{- range .Nav}}
        <a href="{{.Href}}">{{.Label}}</a>
        {{- end}}
      </nav>
      <div class="header-actions">
        <a class="button ghost small" href="{{.Links.Repo}}" target="_blank" rel="noopener noreferrer" aria-label="GitHub">{{icon "github" "small"}}</a>
        <button class="button ghost small" type="button" data-theme-toggle aria-label="Toggle theme">
          {{icon "sun" "small sun-icon"}}{{icon "moon" "small moon-icon"}}
          <span class="sr-only">Toggle theme</span>
        </button>
      </div>
    </div>
  </header>
{{end}}`

const heroTemplate = `{{define "hero"}}
  <section class="hero" id="top">
    <div class="container center">
      <span class="badge dark">{{icon "zap" "tiny"}}{{.Hero.Badge}}</span>
      <h1>{{.Hero.Title}}</h1>
      <p class="lead">{{.Hero.Tagline}}</p>
      <div class="hero-actions">
        <button class="button primary large" type="button" data-copy="{{.Hero.InstallCommand}}">{{icon "download" "small"}}{{.Hero.InstallCommand}}</button>
        <a class="button outline large" href="{{.Links.Repo}}" target="_blank" rel="noopener noreferrer">{{icon "github" "small"}}View on GitHub</a>
      </div>
      <div class="format-grid">
        {{- range .Hero.Formats}}
        <div class="format">{{icon "file-text" ""}}<div>{{.}}</div></div>
        {{- end}}
      </div>
    </div>
  </section>
{{end}}`

const featuresTemplate = `{{define "features"}}
  <section class="section" id="features">
    <div class="container">
      <div class="section-head">
        <h2>Powerful Features</h2>
        <p>Everything you need to extract text and metadata from documents with ease and reliability.</p>
      </div>
      <div class="grid three">
        {{- range .Features}}
        <div class="card feature">
          <div class="feature-top">
            <div class="feature-icon">{{icon .Icon ""}}</div>
            <span class="badge">{{.Badge}}</span>
          </div>
          <h3>{{.Title}}</h3>
          <p class="muted">{{.Description}}</p>
        </div>
        {{- end}}
      </div>
      <div class="stats">
        {{- range .Stats}}
        <div class="stat"><div class="stat-value">{{.Value}}</div><div class="muted">{{.Label}}</div></div>
        {{- end}}
      </div>
    </div>
  </section>
{{end}}`

const docsTemplate = `{{define "documentation"}}
  <section class="section alt" id="docs">
    <div class="container narrow-6">
      <div class="section-head">
        <h2>Documentation</h2>
        <p>Complete API reference and usage examples to get you started quickly.</p>
      </div>
      {{- $g := .Docs}}
      <div class="tabs" data-tab-group="{{$g.ID}}">
        <div class="tab-list" role="tablist">
          {{- range $g.Tabs}}
          <a class="tab{{if $g.IsActive .ID}} active{{end}}" role="tab" href="{{$.TabHref $g.ID .ID}}#docs" data-tab="{{.ID}}" aria-controls="{{$g.PanelID .ID}}" aria-selected="{{$g.IsActive .ID}}">{{.Label}}</a>
          {{- end}}
        </div>
        {{- range .DocPanels}}
        <div class="tab-panel" role="tabpanel" id="{{$g.PanelID .ID}}" data-panel="{{.ID}}"{{if not ($g.IsActive .ID)}} hidden{{end}}>
          {{- if .InstallCommand}}
          <div class="card">
            <h3>Installation &amp; Setup</h3>
            <h4>Install the Package</h4>
            <div class="code-line"><code>{{.InstallCommand}}</code><button class="icon-button" type="button" data-copy="{{.InstallCommand}}" aria-label="Copy">{{icon "copy" "small"}}</button></div>
            <h4>System Dependencies</h4>
            <p class="muted">For full functionality, install these system packages:</p>
            <div class="grid three">
              {{- range .Platforms}}
              <div class="card platform accent-{{.Accent}}"><h5>{{.Name}}</h5><code class="block">{{.Command}}</code></div>
              {{- end}}
            </div>
          </div>
          {{- end}}
          {{- if .Constructor}}
          <div class="card">
            <h3>DocumentReader Class</h3>
            <div class="accent-blue api-constructor"><h4>Constructor</h4><code>{{.Constructor}}</code></div>
            <div class="grid two">
              {{- range .MethodGroups}}
              <div><h4>{{.Title}}</h4><ul class="methods">{{range .Methods}}<li><code>{{.}}</code></li>{{end}}</ul></div>
              {{- end}}
            </div>
          </div>
          {{- end}}
          <div class="{{if eq .ID "quickstart"}}grid two{{else}}stack{{end}}">
            {{- range .Rendered}}
            <div class="card sample">
              <div class="sample-head"><h3>{{.Title}}</h3><button class="icon-button" type="button" data-copy="{{.Code}}" aria-label="Copy">{{icon "copy" "small"}}</button></div>
              <div class="code">{{.HTML}}</div>
            </div>
            {{- end}}
          </div>
        </div>
        {{- end}}
      </div>
    </div>
  </section>
{{end}}`

const examplesTemplate = `{{define "examples"}}
  <section class="section alt" id="examples">
    <div class="container narrow-6">
      <div class="section-head">
        <h2>Real-World Examples</h2>
        <p>See how to integrate {{.Package}} into your applications with these practical examples.</p>
      </div>
      {{- $g := .Examples}}
      <div class="tabs" data-tab-group="{{$g.ID}}">
        <div class="tab-list" role="tablist">
          {{- range $g.Tabs}}
          <a class="tab{{if $g.IsActive .ID}} active{{end}}" role="tab" href="{{$.TabHref $g.ID .ID}}#examples" data-tab="{{.ID}}" aria-controls="{{$g.PanelID .ID}}" aria-selected="{{$g.IsActive .ID}}">{{icon .Icon "small"}}<span>{{.Label}}</span></a>
          {{- end}}
        </div>
        {{- range .ExPanels}}
        <div class="tab-panel" role="tabpanel" id="{{$g.PanelID .ID}}" data-panel="{{.ID}}"{{if not ($g.IsActive .ID)}} hidden{{end}}>
          <div class="card example">
            <div class="example-head">
              <div class="example-title">
                {{icon .Icon ""}}
                <div><h3>{{.Title}}</h3><p class="muted">{{.Description}}</p></div>
              </div>
              <div class="example-actions">
                <button class="button secondary small" type="button" data-copy="{{.Code}}">{{icon "copy" "small"}}Copy</button>
                <a class="button secondary small" href="{{$.Links.Repo}}" target="_blank" rel="noopener noreferrer">{{icon "external-link" "small"}}Open</a>
              </div>
            </div>
            <div class="tags">{{range .Tags}}<span class="badge">{{.}}</span>{{end}}</div>
            <div class="code wrap">{{.HTML}}</div>
          </div>
        </div>
        {{- end}}
      </div>
      <div class="card cta center">
        <h3>Need More Examples?</h3>
        <p class="muted">Check out our comprehensive documentation and community examples on GitHub.</p>
        <div class="hero-actions">
          <a class="button primary" href="{{.Links.Readme}}" target="_blank" rel="noopener noreferrer">{{icon "external-link" "small"}}View Documentation</a>
          <a class="button outline" href="{{.Links.Repo}}" target="_blank" rel="noopener noreferrer">{{icon "external-link" "small"}}GitHub Repository</a>
        </div>
      </div>
    </div>
  </section>
{{end}}`

const demoTemplate = `{{define "demo"}}
  {{- $d := .Demo}}
  <section class="section demo" id="demo" data-demo data-api="{{.Routes.ParseAPI}}" data-state="{{$d.State}}">
    <div class="container narrow-4">
      <div class="section-head">
        <h2>Try It Live</h2>
        <p>Upload a document and see {{.Package}} in action. Extract text and metadata instantly.</p>
      </div>
      <div class="card flush">
        <div class="card-bar">{{icon "file-text" "small"}}Document Processor</div>
        <div class="card-body">
          <div class="demo-upload" data-demo-upload{{if $d.HasResult}} hidden{{end}}>
            <p class="alert error" role="alert" data-demo-error{{if not $d.Error}} hidden{{end}}>{{$d.Error}}</p>
            <p class="alert notice" data-demo-notice{{if not $d.Notice}} hidden{{end}}>{{$d.Notice}}</p>
            <div class="dropzone">
              {{icon "upload" "large muted"}}
              <h3>Upload a Document</h3>
              <p class="muted">Supports PDF, DOCX, DOC, PPT, PPTX, and TXT files</p>
              <form method="post"{{with .Routes.DemoUpload}} action="{{.}}"{{end}} enctype="multipart/form-data" data-demo-form>
                <input class="visually-hidden" type="file" name="document" id="file-upload" accept="{{$d.Accept}}" data-demo-input{{if $d.Disabled}} disabled{{end}}>
                <label class="button primary" for="file-upload" data-demo-button{{if $d.Disabled}} aria-disabled="true"{{end}}>
                  <span data-idle{{if $d.Processing}} hidden{{end}}>{{icon "upload" "small"}}Choose File</span>
                  <span data-busy{{if not $d.Processing}} hidden{{end}}>{{icon "loader" "small spin"}}Processing...</span>
                </label>
                {{- if and .Routes.DemoUpload (not $d.Unavailable)}}
                <noscript><button class="button outline" type="submit">Upload</button></noscript>
                {{- end}}
              </form>
            </div>
          </div>
          <div class="demo-result" data-demo-result{{if not $d.HasResult}} hidden{{end}}>
            <div class="tabs" data-tab-group="demo-result">
              <div class="tab-list two" role="tablist">
                <a class="tab active" role="tab" href="#demo-result-text" data-tab="text">Extracted Text</a>
                <a class="tab" role="tab" href="#demo-result-metadata" data-tab="metadata">Metadata</a>
              </div>
              <div class="tab-panel" role="tabpanel" id="demo-result-text" data-panel="text">
                <div class="card">
                  <div class="sample-head"><h3>Document Content</h3><span class="badge"><span data-field="words">{{$d.Meta.WordsText}}</span> words</span></div>
                  <pre class="extracted" data-field="text">{{with $d.Result}}{{.Text}}{{end}}</pre>
                </div>
              </div>
              <div class="tab-panel" role="tabpanel" id="demo-result-metadata" data-panel="metadata" hidden>
                <div class="grid two">
                  <div class="card">
                    <h4>Document Stats</h4>
                    <dl class="stats-list">
                      <dt>Pages:</dt><dd data-field="pages">{{$d.Meta.PagesText}}</dd>
                      <dt>Words:</dt><dd data-field="words">{{$d.Meta.WordsText}}</dd>
                      <dt>Characters:</dt><dd data-field="characters">{{$d.Meta.CharactersText}}</dd>
                      <dt>File Size:</dt><dd data-field="fileSize">{{$d.Meta.FileSizeText}}</dd>
                    </dl>
                  </div>
                  <div class="card">
                    <h4>File Info</h4>
                    <dl class="stats-list">
                      <dt>Filename:</dt><dd data-field="fileName">{{$d.Meta.FileNameText}}</dd>
                      <dt>Status:</dt><dd><span class="badge success">Processed</span></dd>
                    </dl>
                  </div>
                </div>
              </div>
            </div>
            <div class="center reset-row">
              <a class="button outline" href="{{.Routes.DemoReset}}" data-demo-reset>Try Another Document</a>
            </div>
          </div>
        </div>
      </div>
    </div>
  </section>
{{end}}`

const footerTemplate = `{{define "footer"}}
  <footer class="site-footer">
    <div class="container">
      <div class="grid three">
        <div>
          <h3>{{.Footer.Title}}</h3>
          <p class="muted">{{.Footer.About}}</p>
        </div>
        <div>
          <h3>Quick Links</h3>
          <ul class="links">{{range .Footer.QuickLinks}}<li><a href="{{.Href}}">{{.Label}}</a></li>{{end}}</ul>
        </div>
        <div>
          <h3>Connect</h3>
          <div class="social">
            {{- range .Footer.Social}}
            <a href="{{.Href}}" target="_blank" rel="noopener noreferrer" aria-label="{{.Label}}">{{icon .Icon ""}}</a>
            {{- end}}
          </div>
        </div>
      </div>
      <div class="copyright">
        <p>&copy; {{.Year}} {{.Footer.Owner}}. All rights reserved.</p>
      </div>
    </div>
  </footer>
{{end}}`
