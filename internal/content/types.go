// Package content holds the fixed copy, cards and code samples shown on
// the landing page.
package content

// Icon names an inline SVG icon. The site package owns the artwork.
type Icon string

const (
	IconFileText     Icon = "file-text"
	IconDatabase     Icon = "database"
	IconLayers       Icon = "layers"
	IconCode         Icon = "code"
	IconZap          Icon = "zap"
	IconShield       Icon = "shield"
	IconServer       Icon = "server"
	IconSearch       Icon = "search"
	IconDownload     Icon = "download"
	IconGitHub       Icon = "github"
	IconLinkedIn     Icon = "linkedin"
	IconCopy         Icon = "copy"
	IconExternalLink Icon = "external-link"
	IconUpload       Icon = "upload"
	IconLoader       Icon = "loader"
	IconSun          Icon = "sun"
	IconMoon         Icon = "moon"
)

// HeroContent is the banner at the top of the page.
type HeroContent struct {
	Badge          string
	Title          string
	Tagline        string
	InstallCommand string
	Formats        []string
}

// Feature is one card in the features grid.
type Feature struct {
	Icon        Icon
	Title       string
	Description string
	Badge       string
}

// Stat is one figure in the strip under the features grid.
type Stat struct {
	Value string
	Label string
}

// CodeSample is a titled block of source code with a highlighting language.
type CodeSample struct {
	Title    string
	Language string
	Code     string
}

// Platform is one install-instructions card for system dependencies.
type Platform struct {
	Name    string
	Accent  string
	Command string
}

// APIMethodGroup is a titled list of method signatures.
type APIMethodGroup struct {
	Title   string
	Methods []string
}

// DocTab is one tab of the documentation section. Only the fields that
// apply to a given tab are set.
type DocTab struct {
	ID    string
	Label string

	// Installation tab.
	InstallCommand string
	Platforms      []Platform

	// API tab.
	Constructor  string
	MethodGroups []APIMethodGroup

	// Samples shown as cards (quick start, return types, examples).
	Samples []CodeSample
}

// Example is one tab of the real-world examples section.
type Example struct {
	ID          string
	Title       string
	Description string
	Icon        Icon
	Tags        []string
	Language    string
	Code        string
}

// Label is the short tab caption: the first word of the title.
func (e Example) Label() string {
	for i, r := range e.Title {
		if r == ' ' {
			return e.Title[:i]
		}
	}
	return e.Title
}

// Link is a navigation or outbound link.
type Link struct {
	Label    string
	Href     string
	Icon     Icon
	External bool
}

// FooterContent is the three-column footer.
type FooterContent struct {
	Title      string
	About      string
	QuickLinks []Link
	Social     []Link
	Owner      string
}
