package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Style selects how export progress is shown.
type Style string

const (
	StyleAuto  Style = "auto"
	StyleBar   Style = "bar"
	StylePlain Style = "plain"
	StyleNone  Style = "none"
)

// ParseStyle validates a --progress flag value. Empty means auto.
func ParseStyle(s string) (Style, error) {
	switch st := Style(s); st {
	case "":
		return StyleAuto, nil
	case StyleAuto, StyleBar, StylePlain, StyleNone:
		return st, nil
	}
	return "", fmt.Errorf("unknown progress style %q (want auto, bar, plain or none)", s)
}

// Reporter receives export progress, one Page call per written page.
type Reporter interface {
	Start(total int)
	Page(n int, path string, size int)
	Finish()
}

// New returns the reporter for style writing to w. Auto picks plain lines
// under CI and a bar otherwise.
func New(style Style, w io.Writer) Reporter {
	if style == StyleAuto || style == "" {
		style = StyleBar
		if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
			style = StylePlain
		}
	}
	switch style {
	case StyleBar:
		return &Bar{w: w}
	case StylePlain:
		return &Lines{w: w}
	default:
		return Nop{}
	}
}

// Bar draws a page counter bar, described by the page being written.
type Bar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *Bar) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("exporting"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *Bar) Page(n int, path string, _ int) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(path)
	_ = r.bar.Set(n)
}

func (r *Bar) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// Lines logs one line per page, for CI logs and redirected output.
type Lines struct {
	w            io.Writer
	total, pages int
	bytes        int
}

// NewLines returns a Lines reporter writing to w.
func NewLines(w io.Writer) *Lines { return &Lines{w: w} }

func (r *Lines) Start(total int) {
	r.total = total
	fmt.Fprintf(r.w, "exporting %d pages\n", total)
}

func (r *Lines) Page(n int, path string, size int) {
	r.pages++
	r.bytes += size
	fmt.Fprintf(r.w, "[%d/%d] %s (%d bytes)\n", n, r.total, path, size)
}

func (r *Lines) Finish() {
	fmt.Fprintf(r.w, "exported %d pages, %d bytes\n", r.pages, r.bytes)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int) {}
func (Nop) Page(int, string, int) {}
func (Nop) Finish() {}
