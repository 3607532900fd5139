package progress

import (
	"bytes"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "demo.html")
	r.Finish()

	want := "Building site: 2 files\n[1/2] index.html\n[2/2] demo.html\nSite build complete\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewReporter(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		bar  bool
	}{
		{"ci", map[string]string{"CI": "true", "GITHUB_ACTIONS": ""}, false},
		{"github actions", map[string]string{"CI": "", "GITHUB_ACTIONS": "true"}, false},
		{"terminal", map[string]string{"CI": "", "GITHUB_ACTIONS": ""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, isBar := NewReporter().(*BarReporter)
			if isBar != tt.bar {
				t.Errorf("bar reporter = %v, want %v", isBar, tt.bar)
			}
		})
	}
}

func TestBarReporterUpdateBeforeStart(t *testing.T) {
	r := &BarReporter{}
	r.Update(1, "index.html")
	r.Finish()
}
