package extract

import (
	"reflect"
	"testing"

	"github.com/gaurav-prasanna/pagescope/core"
)

func TestImages(t *testing.T) {
	testCases := []struct {
		name        string
		baseURL     string
		htmlContent string
		wantTotal   int
		wantImages  []core.Image
	}{
		{
			name:        "Parent relative src",
			baseURL:     "https://example.com/blog/",
			htmlContent: `<img src="../logo.png" alt="Logo">`,
			wantTotal:   1,
			wantImages:  []core.Image{{Src: "https://example.com/logo.png", Alt: "Logo"}},
		},
		{
			name:    "Mixed sources and attributes",
			baseURL: "https://example.com/a/",
			htmlContent: `
				<img src="/root.png" width="100" height="50">
				<img src="https://cdn.example.net/abs.png" alt="">
				<img src="//cdn.example.net/proto.png" alt="Proto">
				<img alt="No source">
				<img src="rel.png">
			`,
			wantTotal: 5,
			wantImages: []core.Image{
				{Src: "https://example.com/root.png", Width: "100", Height: "50"},
				{Src: "https://cdn.example.net/abs.png"},
				{Src: "//cdn.example.net/proto.png", Alt: "Proto"},
				{Alt: "No source"},
				{Src: "https://example.com/a/rel.png"},
			},
		},
		{
			name:        "Stray percent in src",
			baseURL:     "https://example.com/blog/",
			htmlContent: `<img src="img/100%.png" alt="Full"><img src="https://cdn.example.net/a/../b.png">`,
			wantTotal:   2,
			wantImages: []core.Image{
				{Src: "https://example.com/blog/img/100%25.png", Alt: "Full"},
				{Src: "https://cdn.example.net/a/../b.png"},
			},
		},
		{
			name:        "Empty and absent attributes both read as empty",
			baseURL:     "https://example.com/",
			htmlContent: `<img src="" width="" height=""><img>`,
			wantTotal:   2,
			wantImages:  []core.Image{{}, {}},
		},
		{
			name:        "No images",
			baseURL:     "https://example.com",
			htmlContent: `<p>text</p>`,
			wantTotal:   0,
			wantImages:  []core.Image{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.htmlContent)
			got := Images(doc, mustURL(t, tc.baseURL))

			if got.Total != tc.wantTotal {
				t.Errorf("Total = %d, want %d", got.Total, tc.wantTotal)
			}
			if got.Total != doc.Find("img").Length() {
				t.Errorf("Total = %d, but the document has %d <img> elements", got.Total, doc.Find("img").Length())
			}
			if !reflect.DeepEqual(got.Images, tc.wantImages) {
				t.Errorf("Images = %+v, want %+v", got.Images, tc.wantImages)
			}
		})
	}
}
