package normalize

import (
	"strings"
	"testing"
)

func TestMarkdownNormalizer_Normalize(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		contains []string
	}{
		{
			name:     "Heading and paragraph",
			html:     `<main><h1>Title</h1><p>Some text.</p></main>`,
			contains: []string{"# Title", "Some text."},
		},
		{
			name:     "Link",
			html:     `<p><a href="https://example.com/about">About</a></p>`,
			contains: []string{"[About](https://example.com/about)"},
		},
		{
			name:     "Emphasis",
			html:     `<p><strong>bold</strong></p>`,
			contains: []string{"**bold**"},
		},
	}

	n := New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := n.Normalize(tc.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tc.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Normalize() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestMarkdownNormalizer_Empty(t *testing.T) {
	got, err := New().Normalize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}
