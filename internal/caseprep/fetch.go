package caseprep

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Official/public source pages per area.
const (
	fcaRSSFeed        = "https://www.judgments.fedcourt.gov.au/rss/fca-judgments"
	fcaLatestPage     = "https://www.fedcourt.gov.au/digital-law-library/judgments/latest"
	hcaJudgmentsList  = "https://www.hcourt.gov.au/cases-and-judgments/judgments/judgments-2000-current"
	vicSummariesPage  = "https://www.supremecourt.vic.gov.au/areas/case-summaries/judgments"
	qldRecentPage     = "https://www.queenslandjudgments.com.au/caselaw/qca/recent-judgments"
	defaultUserAgent  = "DebattleCasePrep/1.0 (educational; respects robots)"
	minExtractChars   = 200
	fetchConcurrency  = 4
	candidateOverscan = 2 // fetch extra candidates; short pages get filtered
)

// Fetcher collects readable extracts from the per-area source pages.
type Fetcher struct {
	client    *http.Client
	logger    *zap.Logger
	userAgent string
}

// NewFetcher creates a Fetcher. A nil logger disables logging.
func NewFetcher(timeout time.Duration, logger *zap.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
		userAgent: defaultUserAgent,
	}
}

type candidate struct {
	title string
	url   string
}

// Extracts returns up to limit readable extracts for area.
func (f *Fetcher) Extracts(ctx context.Context, area Area, limit int) ([]Extract, error) {
	if limit <= 0 {
		limit = 6
	}

	var (
		cands []candidate
		err   error
	)
	switch area {
	case AreaBusiness:
		cands, err = f.businessCandidates(ctx)
	case AreaConstitutional:
		cands, err = f.constitutionalCandidates(ctx)
	case AreaCriminal:
		cands, err = f.criminalCandidates(ctx)
	default:
		return nil, fmt.Errorf("unknown case area %q", area)
	}
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return nil, fmt.Errorf("no candidate sources found for area %q", area)
	}

	if limitMax := limit * candidateOverscan; len(cands) > limitMax {
		cands = cands[:limitMax]
	}
	extracts := f.fetchAll(ctx, cands)
	if len(extracts) > limit {
		extracts = extracts[:limit]
	}
	if len(extracts) == 0 {
		return nil, fmt.Errorf("could not fetch any source texts for area %q", area)
	}
	f.logger.Info("collected extracts", zap.String("area", string(area)), zap.Int("count", len(extracts)))
	return extracts, nil
}

// fetchAll fetches candidate pages concurrently and keeps those whose
// extracted text clears the minimum length. Individual page failures are
// logged and skipped, never fatal.
func (f *Fetcher) fetchAll(ctx context.Context, cands []candidate) []Extract {
	var (
		mu       sync.Mutex
		extracts []Extract
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, c := range cands {
		c := c
		g.Go(func() error {
			body, err := f.get(gctx, c.url)
			if err != nil {
				f.logger.Debug("skipping source", zap.String("url", c.url), zap.Error(err))
				return nil
			}
			text := ExtractText(body)
			if utf8.RuneCountInString(text) < minExtractChars {
				return nil
			}
			mu.Lock()
			extracts = append(extracts, Extract{Title: c.title, URL: c.url, Text: text})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return extracts
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(body), nil
}

// businessCandidates reads the Federal Court judgments RSS feed, falling
// back to the latest-judgments HTML page when the feed yields nothing.
func (f *Fetcher) businessCandidates(ctx context.Context) ([]candidate, error) {
	if body, err := f.get(ctx, fcaRSSFeed); err == nil {
		if items, err := ParseRSS(body); err == nil && len(items) > 0 {
			cands := make([]candidate, 0, len(items))
			for _, it := range items {
				if it.Link == "" {
					continue
				}
				cands = append(cands, candidate{title: it.Title, url: it.Link})
			}
			if len(cands) > 0 {
				return cands, nil
			}
		}
	}

	body, err := f.get(ctx, fcaLatestPage)
	if err != nil {
		return nil, fmt.Errorf("business sources unavailable: %w", err)
	}
	var cands []candidate
	for _, l := range pageLinks(body) {
		if l.text == "" || !strings.Contains(l.href, "judgments.fedcourt.gov.au") {
			continue
		}
		cands = append(cands, candidate{title: l.text, url: l.href})
	}
	return cands, nil
}

// constitutionalCandidates collects judgment links from the High Court
// judgments index.
func (f *Fetcher) constitutionalCandidates(ctx context.Context) ([]candidate, error) {
	body, err := f.get(ctx, hcaJudgmentsList)
	if err != nil {
		return nil, fmt.Errorf("constitutional sources unavailable: %w", err)
	}
	var cands []candidate
	for _, l := range pageLinks(body) {
		if !strings.Contains(l.href, "/judgments/") {
			continue
		}
		url := l.href
		if strings.HasPrefix(url, "/") {
			url = "https://www.hcourt.gov.au" + url
		}
		if !strings.HasPrefix(url, "http") {
			continue
		}
		title := l.text
		if title == "" {
			title = "HCA Judgment"
		}
		cands = append(cands, candidate{title: title, url: url})
	}
	return cands, nil
}

// criminalCandidates collects summary links from the VIC Supreme Court
// summaries page and the QLD Court of Appeal recent-judgments page,
// skipping PDFs.
func (f *Fetcher) criminalCandidates(ctx context.Context) ([]candidate, error) {
	var cands []candidate

	if body, err := f.get(ctx, vicSummariesPage); err == nil {
		for _, l := range pageLinks(body) {
			if l.text == "" || strings.HasSuffix(strings.ToLower(l.href), ".pdf") {
				continue
			}
			url := l.href
			if strings.HasPrefix(url, "/") {
				url = "https://www.supremecourt.vic.gov.au" + url
			}
			if !strings.HasPrefix(url, "http") {
				continue
			}
			cands = append(cands, candidate{title: l.text, url: url})
		}
	}

	if body, err := f.get(ctx, qldRecentPage); err == nil {
		for _, l := range pageLinks(body) {
			if l.text == "" || !strings.HasPrefix(l.href, "http") {
				continue
			}
			// Judgment titles carry a year citation like "[2024] QCA 12".
			if !strings.Contains(l.text, "[20") && !strings.Contains(l.text, "[19") {
				continue
			}
			cands = append(cands, candidate{title: l.text, url: l.href})
		}
	}

	if len(cands) == 0 {
		return nil, fmt.Errorf("criminal sources unavailable")
	}
	return cands, nil
}

type link struct {
	text string
	href string
}

// pageLinks parses HTML and returns every anchor's text and href.
func pageLinks(body string) []link {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil
	}
	var links []link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			var href string
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					href = attr.Val
					break
				}
			}
			if href != "" {
				links = append(links, link{text: nodeText(n), href: href})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

// ExtractText pulls readable text from an HTML page: the first of <main>,
// <article>, or an id/class "content" container, else the whole document.
// Script and style content is dropped and whitespace collapsed.
func ExtractText(body string) string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return ""
	}
	if n := findContentNode(doc); n != nil {
		if text := nodeText(n); utf8.RuneCountInString(text) >= minExtractChars {
			return text
		}
	}
	return nodeText(doc)
}

func findContentNode(doc *html.Node) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			if n.Data == "main" || n.Data == "article" {
				found = n
				return
			}
			for _, attr := range n.Attr {
				if (attr.Key == "id" || attr.Key == "class") && strings.Contains(attr.Val, "content") {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// RSSItem is one entry of a judgments feed.
type RSSItem struct {
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

type rssChannel struct {
	Items []RSSItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

// ParseRSS decodes a judgments RSS feed into its items.
func ParseRSS(body string) ([]RSSItem, error) {
	var feed rssFeed
	if err := xml.Unmarshal([]byte(body), &feed); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed.Channel.Items, nil
}
