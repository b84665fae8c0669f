package caseprep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const contentPage = `<html><head><title>R v Example</title>
<style>body { color: red }</style>
<script>console.log("tracking")</script></head>
<body>
<nav><a href="/home">Home</a></nav>
<main>
<h1>R v Example [2024] QCA 12</h1>
<p>The appellant was convicted of an offence and appealed on two grounds.
The first ground concerned the adequacy of the trial judge's directions to
the jury on the element of intent. The second ground concerned the admission
of identification evidence obtained in circumstances said to be unfair.</p>
</main>
<footer>Copyright notice</footer>
</body></html>`

func TestExtractTextPrefersContentContainer(t *testing.T) {
	got := ExtractText(contentPage)
	if !strings.Contains(got, "adequacy of the trial judge's directions") {
		t.Errorf("main content missing: %q", got)
	}
	if strings.Contains(got, "console.log") || strings.Contains(got, "color: red") {
		t.Errorf("script/style leaked into text: %q", got)
	}
	if strings.Contains(got, "Copyright notice") {
		t.Errorf("footer should be excluded when <main> is present: %q", got)
	}
}

func TestExtractTextFallsBackToWholeDocument(t *testing.T) {
	// No main/article/content container and a short body: the whole document
	// text is returned.
	page := `<html><body><div><p>Short summary of a judgment.</p></div></body></html>`
	got := ExtractText(page)
	if !strings.Contains(got, "Short summary of a judgment.") {
		t.Errorf("fallback text missing: %q", got)
	}
}

func TestExtractTextCollapsesWhitespace(t *testing.T) {
	page := "<html><body><main><p>line   one\n\n\tline two  " + strings.Repeat("pad ", 60) + "</p></main></body></html>"
	got := ExtractText(page)
	if strings.Contains(got, "  ") || strings.Contains(got, "\n") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
	if !strings.Contains(got, "line one line two") {
		t.Errorf("text mangled: %q", got)
	}
}

func TestExtractTextCountsCharacters(t *testing.T) {
	wrap := func(mainText string) string {
		return "<html><body><main><p>" + mainText + "</p></main><footer>site footer</footer></body></html>"
	}

	// 210 characters of CJK main content is enough for the container branch.
	got := ExtractText(wrap(strings.Repeat("判", 210)))
	if strings.Contains(got, "site footer") {
		t.Errorf("footer leaked past a sufficient <main>: %q", got)
	}

	// 80 characters is short of the minimum even at three bytes each, so the
	// whole document is used instead.
	got = ExtractText(wrap(strings.Repeat("判", 80)))
	if !strings.Contains(got, "site footer") {
		t.Errorf("short main content should fall back to the whole document: %q", got)
	}
}

func TestFetchAllFiltersShortExtracts(t *testing.T) {
	page := func(text string) string {
		return "<html><body><main><p>" + text + "</p></main></body></html>"
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/long", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page(strings.Repeat("The appeal turned on intent. ", 20))))
	})
	mux.HandleFunc("/short", func(w http.ResponseWriter, r *http.Request) {
		// 80 characters, 240 bytes: under the character minimum.
		w.Write([]byte(page(strings.Repeat("判", 80))))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	f := NewFetcher(5*time.Second, nil)
	got := f.fetchAll(context.Background(), []candidate{
		{title: "Long", url: ts.URL + "/long"},
		{title: "Short", url: ts.URL + "/short"},
		{title: "Missing", url: ts.URL + "/missing"},
	})

	if len(got) != 1 {
		t.Fatalf("len(extracts) = %d, want 1: %+v", len(got), got)
	}
	if got[0].Title != "Long" {
		t.Errorf("extract = %+v, want the long page", got[0])
	}
}

func TestPageLinks(t *testing.T) {
	page := `<html><body>
<a href="https://example.org/a">First Case</a>
<a href="/relative">Second Case</a>
<a>No href</a>
<a href="https://example.org/c"><span>Nested</span> Text</a>
</body></html>`
	links := pageLinks(page)
	if len(links) != 3 {
		t.Fatalf("len(links) = %d, want 3", len(links))
	}
	if links[0].href != "https://example.org/a" || links[0].text != "First Case" {
		t.Errorf("links[0] = %+v", links[0])
	}
	if links[1].href != "/relative" {
		t.Errorf("links[1] = %+v", links[1])
	}
	if links[2].text != "Nested Text" {
		t.Errorf("nested anchor text = %q, want joined", links[2].text)
	}
}

func TestParseRSS(t *testing.T) {
	feed := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Judgments</title>
<item><title>Smith v Jones [2024] FCA 1</title><link>https://example.org/1</link></item>
<item><title>Doe v Roe [2024] FCA 2</title><link>https://example.org/2</link></item>
</channel></rss>`
	items, err := ParseRSS(feed)
	if err != nil {
		t.Fatalf("ParseRSS() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Title != "Smith v Jones [2024] FCA 1" || items[0].Link != "https://example.org/1" {
		t.Errorf("items[0] = %+v", items[0])
	}
}

func TestParseRSSRejectsJunk(t *testing.T) {
	if _, err := ParseRSS("<html>not a feed"); err == nil {
		t.Error("non-RSS input should be an error")
	}
}

func TestParseArea(t *testing.T) {
	for _, s := range []string{"constitutional", "business", "criminal"} {
		if _, err := ParseArea(s); err != nil {
			t.Errorf("ParseArea(%q) error = %v", s, err)
		}
	}
	if _, err := ParseArea("maritime"); err == nil {
		t.Error("unknown area should be an error")
	}
}
