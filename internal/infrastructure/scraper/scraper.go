// Package scraper fetches article pages and extracts their paragraph text.
package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"blogsummarizer/internal/shared/constants"
	"blogsummarizer/internal/shared/logger"
	"blogsummarizer/internal/shared/utils/logutil"
)

// ErrNoContent is wrapped by every Fetch failure. Callers only need this
// signal; the wrapped cause is for logs.
var ErrNoContent = errors.New("no article content")

// DefaultSelectors keeps the narrow paragraph-under-article rule.
var DefaultSelectors = []string{"article p"}

// Config holds fetch settings
type Config struct {
	Timeout      time.Duration
	UserAgent    string
	Selectors    []string // tried in order; the first with text wins
	MaxBodyBytes int64
}

// ArticleFetcher performs a single GET per call and never retries.
type ArticleFetcher struct {
	client    *http.Client
	userAgent string
	selectors []string
	maxBody   int64
	logger    logger.Interface
}

// NewArticleFetcher builds a fetcher with its own http.Client
func NewArticleFetcher(cfg Config, log logger.Interface) *ArticleFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return NewArticleFetcherWithClient(&http.Client{Timeout: timeout}, cfg, log)
}

// NewArticleFetcherWithClient uses the given client as is
func NewArticleFetcherWithClient(client *http.Client, cfg Config, log logger.Interface) *ArticleFetcher {
	selectors := cfg.Selectors
	if len(selectors) == 0 {
		selectors = DefaultSelectors
	}
	return &ArticleFetcher{
		client:    client,
		userAgent: cfg.UserAgent,
		selectors: append([]string(nil), selectors...),
		maxBody:   cfg.MaxBodyBytes,
		logger:    log,
	}
}

// Fetch loads url and returns its article text with whitespace collapsed.
func (f *ArticleFetcher) Fetch(ctx context.Context, url string) (string, error) {
	logURL := logutil.TruncateForLog(url, constants.LogPreviewLength)

	doc, err := f.load(ctx, url)
	if err != nil {
		f.logger.Warnw("failed to load page", "url", logURL, "error", err)
		return "", fmt.Errorf("%w: %w", ErrNoContent, err)
	}

	text, selector := f.extract(doc)
	if text == "" {
		f.logger.Warnw("no article text found", "url", logURL, "selectors", f.selectors)
		return "", fmt.Errorf("%w: no text under %s", ErrNoContent, strings.Join(f.selectors, ", "))
	}

	f.logger.Debugw("article extracted", "url", logURL, "selector", selector, "length", len(text))
	return text, nil
}

func (f *ArticleFetcher) load(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set(constants.HeaderUserAgent, f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	body, err := f.readBody(resp.Body, url)
	if err != nil {
		return nil, fmt.Errorf("error reading page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %w", err)
	}
	return doc, nil
}

// readBody reads at most maxBody bytes. One extra byte is requested so an
// oversized page is reported instead of cut off silently.
func (f *ArticleFetcher) readBody(r io.Reader, url string) ([]byte, error) {
	if f.maxBody <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, f.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBody {
		f.logger.Warnw("page body exceeds limit, parsing truncated content",
			"url", logutil.TruncateForLog(url, constants.LogPreviewLength),
			"limit_bytes", f.maxBody,
		)
		body = body[:f.maxBody]
	}
	return body, nil
}

// extract joins the text of every element matched by the first selector that
// yields any text.
func (f *ArticleFetcher) extract(doc *goquery.Document) (string, string) {
	for _, selector := range f.selectors {
		var parts []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			parts = append(parts, s.Text())
		})
		if text := normalizeWhitespace(strings.Join(parts, " ")); text != "" {
			return text, selector
		}
	}
	return "", ""
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
