package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPage = `<html><head>
	<title>Test Page</title>
	<meta property="og:title" content="Hi">
</head><body>
	<h1>Hello</h1>
	<p>Some text.</p>
	<a href="/about">About</a>
	<a href="https://other.com">Other</a>
</body></html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, testPage)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

// isolateEnv keeps the developer's environment and .env out of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{"PAGESCOPE_USER_AGENT", "PAGESCOPE_TIMEOUT", "PAGESCOPE_LOG_LEVEL", "PAGESCOPE_OUTPUT_DIR"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_OneShot(t *testing.T) {
	isolateEnv(t)
	ts := newTestServer(t)

	testCases := []struct {
		name     string
		args     []string
		want     []string
		wantNone []string
		exact    string
	}{
		{
			name: "Text report",
			args: []string{ts.URL + "/"},
			want: []string{
				"Website Analysis Report for: " + ts.URL + "/",
				"  Open Graph title: Hi",
				"  title: Test Page",
				"  H1 (1 found):",
				"  Internal Links: 1",
				"  External Links: 1",
				"  Paragraphs Found: 1",
			},
			wantNone: []string{"Main Content"},
		},
		{
			name: "With content excerpt",
			args: []string{ts.URL + "/", "--content"},
			want: []string{"--- Main Content ---", "# Hello"},
		},
		{
			name:  "Invalid URL",
			args:  []string{"example.com"},
			exact: "Invalid URL. Please include 'http://' or 'https://'.\n",
		},
		{
			name:  "Fetch failure",
			args:  []string{ts.URL + "/missing"},
			exact: "Error: Could not fetch or parse " + ts.URL + "/missing\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, "", tc.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.exact != "" && out != tc.exact {
				t.Errorf("output = %q, want %q", out, tc.exact)
			}
			for _, want := range tc.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
			for _, unwanted := range tc.wantNone {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestRootCmd_Interactive(t *testing.T) {
	isolateEnv(t)
	ts := newTestServer(t)

	stdin := "ftp://example.com\n" + ts.URL + "/\n  QUIT  \n" + ts.URL + "/\n"
	out, err := execute(t, stdin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, welcomeMessage+"\n") {
		t.Errorf("output should start with the welcome text\n%s", out)
	}
	if n := strings.Count(out, "Enter the URL of the website to analyze (or 'quit' to exit): "); n != 3 {
		t.Errorf("prompted %d times, want 3", n)
	}
	if n := strings.Count(out, invalidURLMessage); n != 1 {
		t.Errorf("invalid URL message shown %d times, want 1", n)
	}
	if n := strings.Count(out, "Website Analysis Report for: "); n != 1 {
		t.Errorf("%d reports printed, want 1 (input after quit is ignored)", n)
	}
	if !strings.HasSuffix(out, goodbyeMessage+"\n") {
		t.Errorf("output should end with the goodbye text\n%s", out)
	}
}

func TestRootCmd_InteractiveEOF(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := welcomeMessage + "\n" + promptMessage + "\n" + goodbyeMessage + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRootCmd_JSONFormat(t *testing.T) {
	isolateEnv(t)
	ts := newTestServer(t)

	out, err := execute(t, "", ts.URL+"/", "--format", "JSON")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		URL   string `json:"url"`
		Links struct {
			Total int `json:"total_links"`
		} `json:"links"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if decoded.URL != ts.URL+"/" || decoded.Links.Total != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRootCmd_WritesFiles(t *testing.T) {
	isolateEnv(t)
	ts := newTestServer(t)

	testCases := []struct {
		name string
		args []string
		ext  string
	}{
		{name: "PDF", args: []string{"--format", "pdf"}, ext: ".pdf"},
		{name: "XLSX", args: []string{"--format", "xlsx"}, ext: ".xlsx"},
		{name: "Markdown", args: []string{"--format", "markdown"}, ext: ".md"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			args := append([]string{ts.URL + "/", "--output_dir", dir}, tc.args...)

			out, err := execute(t, "", args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			files, _ := filepath.Glob(filepath.Join(dir, "*"+tc.ext))
			if len(files) != 1 {
				t.Fatalf("found %v in %s, want one %s file", files, dir, tc.ext)
			}
			if !strings.Contains(out, "✓ Written: "+files[0]) {
				t.Errorf("output = %q, want the written path", out)
			}
			if info, err := os.Stat(files[0]); err != nil || info.Size() == 0 {
				t.Errorf("written file is missing or empty: %v", err)
			}
		})
	}
}

func TestRootCmd_FailureIsNotWritten(t *testing.T) {
	isolateEnv(t)
	ts := newTestServer(t)
	dir := t.TempDir()

	out, err := execute(t, "", ts.URL+"/missing", "--format", "pdf", "--output_dir", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Error: Could not fetch or parse "+ts.URL+"/missing\n" {
		t.Errorf("output = %q", out)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("expected no files, found %d", len(entries))
	}
}

func TestRootCmd_Errors(t *testing.T) {
	isolateEnv(t)

	testCases := []struct {
		name string
		args []string
	}{
		{name: "Unknown format", args: []string{"https://example.com", "--format", "embeddings"}},
		{name: "Too many arguments", args: []string{"https://a.com", "https://b.com"}},
		{name: "Zero timeout", args: []string{"https://example.com", "--timeout", "0s"}},
		{name: "Empty user agent", args: []string{"https://example.com", "--user_agent", ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, "", tc.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRootCmd_EnvTimeout(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PAGESCOPE_TIMEOUT", "soon")

	if _, err := execute(t, "", "https://example.com"); err == nil {
		t.Error("expected an error for an unparsable PAGESCOPE_TIMEOUT")
	}
}

func TestValidURL(t *testing.T) {
	testCases := map[string]bool{
		"http://example.com":  true,
		"https://example.com": true,
		"example.com":         false,
		"ftp://example.com":   false,
		"":                    false,
		"HTTPS://example.com": false,
	}
	for in, want := range testCases {
		if got := validURL(in); got != want {
			t.Errorf("validURL(%q) = %v, want %v", in, got, want)
		}
	}
}
