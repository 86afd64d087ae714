package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/coleweb/internal/progress"
)

func TestGenerate(t *testing.T) {
	outDir := t.TempDir()
	var log bytes.Buffer

	gen := NewSiteGenerator(newTestSite(t, Options{}), outDir)
	gen.Reporter = progress.NewLines(&log)

	count, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if count != 9 {
		t.Errorf("expected 9 pages, got %d", count)
	}

	for _, f := range []string{
		"index.html",
		"about.html",
		"docs/index.html",
		"docs/overview.html",
		"docs/installation.html",
		"docs/quick-start.html",
		"docs/features.html",
		"docs/tech-stack.html",
		"docs/faq.html",
		"static/site.css",
		"static/site.js",
	} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(f))); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}

	if !strings.Contains(log.String(), "[9/9]") {
		t.Errorf("reporter did not see every page:\n%s", log.String())
	}
	faq, err := os.Stat(filepath.Join(outDir, "docs", "faq.html"))
	if err != nil {
		t.Fatal(err)
	}
	if want := fmt.Sprintf("docs/faq.html (%d bytes)", faq.Size()); !strings.Contains(log.String(), want) {
		t.Errorf("reporter log missing %q:\n%s", want, log.String())
	}
}

func TestGenerateStaticDefaults(t *testing.T) {
	outDir := t.TempDir()
	if _, err := NewSiteGenerator(newTestSite(t, Options{}), outDir).Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	home := string(index)
	for _, want := range []string{
		`data-live="false"`,
		`data-theme="light"`,
		`href="static/site.css"`,
		`href="about.html"`,
		`<span id="detected-os" class="accent">Unknown OS</span>`,
	} {
		if !strings.Contains(home, want) {
			t.Errorf("index.html missing %s", want)
		}
	}
	if strings.Contains(home, "download-highlight") {
		t.Error("exported home page should not highlight a card")
	}
}

func TestGenerateDocsLinks(t *testing.T) {
	outDir := t.TempDir()
	if _, err := NewSiteGenerator(newTestSite(t, Options{}), outDir).Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "docs", "faq.html"))
	if err != nil {
		t.Fatal(err)
	}
	page := string(raw)
	if !strings.Contains(page, `class="doc-link active" data-section="FAQ"`) {
		t.Error("expected FAQ active in docs/faq.html")
	}
	for _, want := range []string{
		`href="../static/site.css"`,
		`href="../docs/quick-start.html"`,
		`href="../index.html#features"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("docs/faq.html missing %s", want)
		}
	}
}

func TestGenerateNoSite(t *testing.T) {
	if _, err := (&SiteGenerator{OutputDir: t.TempDir()}).Generate(); err == nil {
		t.Error("expected error without a site")
	}
}
