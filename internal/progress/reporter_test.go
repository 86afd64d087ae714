package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewLines(&buf)
	r.Start(2)
	r.Page(1, "index.html", 120)
	r.Page(2, "docs/faq.html", 80)
	r.Finish()

	want := "exporting 2 pages\n" +
		"[1/2] index.html (120 bytes)\n" +
		"[2/2] docs/faq.html (80 bytes)\n" +
		"exported 2 pages, 200 bytes\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLinesCountsOnlyWrittenPages(t *testing.T) {
	var buf bytes.Buffer
	r := NewLines(&buf)
	r.Start(9)
	r.Page(1, "index.html", 10)
	r.Finish()

	if !strings.HasSuffix(buf.String(), "exported 1 pages, 10 bytes\n") {
		t.Errorf("summary should reflect a partial export, got %q", buf.String())
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleAuto, false},
		{"auto", StyleAuto, false},
		{"bar", StyleBar, false},
		{"plain", StylePlain, false},
		{"none", StyleNone, false},
		{"fancy", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewPicksReporter(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := New(StyleAuto, &buf).(*Bar); !ok {
		t.Error("auto outside CI should draw a bar")
	}
	if _, ok := New(StylePlain, &buf).(*Lines); !ok {
		t.Error("plain should log lines")
	}
	if _, ok := New(StyleNone, &buf).(Nop); !ok {
		t.Error("none should discard progress")
	}

	t.Setenv("GITHUB_ACTIONS", "true")
	if _, ok := New(StyleAuto, &buf).(*Lines); !ok {
		t.Error("auto under CI should log lines")
	}
	if _, ok := New(StyleBar, &buf).(*Bar); !ok {
		t.Error("explicit bar should win over CI")
	}
}

func TestBarWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	r := New(StyleBar, &buf)
	r.Start(3)
	r.Page(1, "about.html", 42)
	if !strings.Contains(buf.String(), "about.html") {
		t.Errorf("bar output missing page path: %q", buf.String())
	}
	r.Finish()
}

func TestBarBeforeStart(t *testing.T) {
	r := &Bar{}
	// Page and Finish without Start must not panic.
	r.Page(1, "x", 0)
	r.Finish()
}
