package render

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/pagescope/core"
)

const wantSampleReport = `
============================================================
Website Analysis Report for: https://example.com
============================================================

--- SEO/Meta Information ---
  description: A sample page
  Open Graph title: Hi
  title: Sample

--- Headings Summary ---
  H1 (1 found):
    - Hello
  H2 (1 found):
    - World
  H3: None found
  H4: None found
  H5: None found
  H6: None found

--- Image Summary ---
  Total Images: 3
  Images with Alt text: 2
  Images with Missing Alt text: 1
  (Consider adding alt text for accessibility and SEO)
  Most common Alt texts:
    - 'Logo' (x2)

--- Link Summary ---
  Total Links: 2
  Internal Links: 1
  External Links: 1
  Example Internal Links:
    - [About](https://example.com/about)
  Example External Links:
    - [No Text](https://other.com)

--- Content Metrics ---
  Approx. Word Count: 120
  Paragraphs Found: 4
  External Stylesheets: 2
  External Scripts: 1

============================================================
`

func TestTextRenderer_Render(t *testing.T) {
	got, err := NewTextRenderer().Render(core.Succeeded(samplePage()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != wantSampleReport {
		t.Errorf("Render() mismatch\ngot:\n%s\nwant:\n%s", got, wantSampleReport)
	}
}

func TestTextRenderer_Render_Error(t *testing.T) {
	got, err := NewTextRenderer().Render(core.Failed("https://example.com/missing"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Error: Could not fetch or parse https://example.com/missing\n"; string(got) != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTextRenderer_Render_Content(t *testing.T) {
	page := samplePage()
	page.Content = "# Hello\n\nSome words.\n"

	got, err := NewTextRenderer().Render(core.Succeeded(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\n--- Main Content ---\n# Hello\n\nSome words.\n\n" + strings.Repeat("=", 60) + "\n"
	if !strings.HasSuffix(string(got), want) {
		t.Errorf("Render() = %q, want suffix %q", got, want)
	}
}

func TestTextRenderer_Extension(t *testing.T) {
	if ext := NewTextRenderer().Extension(); ext != ".txt" {
		t.Errorf("Extension() = %q, want .txt", ext)
	}
}
