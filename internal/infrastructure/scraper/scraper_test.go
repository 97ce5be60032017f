package scraper

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsummarizer/internal/shared/constants"
	"blogsummarizer/internal/shared/logger"
)

func newBufferLogger(buf *bytes.Buffer) logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func newPageServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestArticleFetcher_ExtractsArticleParagraphs(t *testing.T) {
	page := `<html><body>
		<p>Outside the article.</p>
		<article>
			<h1>Title</h1>
			<p>  First   paragraph.
			</p>
			<div><p>Nested	second.</p></div>
		</article>
	</body></html>`
	srv := newPageServer(t, http.StatusOK, page)
	f := NewArticleFetcher(Config{Timeout: time.Second}, logger.NewNopLogger())

	text, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "First paragraph. Nested second.", text)
}

func TestArticleFetcher_NoArticleTag(t *testing.T) {
	srv := newPageServer(t, http.StatusOK, `<html><body><p>Just a paragraph.</p></body></html>`)
	f := NewArticleFetcher(Config{}, logger.NewNopLogger())

	text, err := f.Fetch(context.Background(), srv.URL)

	assert.Empty(t, text)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestArticleFetcher_EmptyParagraphs(t *testing.T) {
	srv := newPageServer(t, http.StatusOK, `<article><p>   </p><p>
	</p></article>`)
	f := NewArticleFetcher(Config{}, logger.NewNopLogger())

	_, err := f.Fetch(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrNoContent)
}

func TestArticleFetcher_Non2xx(t *testing.T) {
	srv := newPageServer(t, http.StatusNotFound, `<article><p>Not found page text.</p></article>`)
	f := NewArticleFetcher(Config{}, logger.NewNopLogger())

	_, err := f.Fetch(context.Background(), srv.URL)

	require.ErrorIs(t, err, ErrNoContent)
	assert.Contains(t, err.Error(), "404")
}

func TestArticleFetcher_TransportError(t *testing.T) {
	f := NewArticleFetcher(Config{Timeout: time.Second}, logger.NewNopLogger())

	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = f.Fetch(context.Background(), "::not a url")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestArticleFetcher_SelectorFallback(t *testing.T) {
	srv := newPageServer(t, http.StatusOK, `<div class="post-body"><p>Fallback text.</p></div>`)
	f := NewArticleFetcher(Config{Selectors: []string{"article p", ".post-body p"}}, logger.NewNopLogger())

	text, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Fallback text.", text)
}

func TestArticleFetcher_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		_, _ = w.Write([]byte(`<article><p>ok</p></article>`))
	}))
	defer srv.Close()
	f := NewArticleFetcher(Config{UserAgent: "blogsummarizer-test"}, logger.NewNopLogger())

	_, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "blogsummarizer-test", gotUA)
}

func TestArticleFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	f := NewArticleFetcher(Config{Timeout: 50 * time.Millisecond}, logger.NewNopLogger())

	_, err := f.Fetch(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrNoContent)
}

func TestArticleFetcher_MaxBodyTruncates(t *testing.T) {
	page := `<article><p>short</p>` + strings.Repeat(" ", 64) + `<p>cut off paragraph</p></article>`
	srv := newPageServer(t, http.StatusOK, page)
	var logs bytes.Buffer
	f := NewArticleFetcher(Config{MaxBodyBytes: 40}, newBufferLogger(&logs))

	text, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "short", text)
	assert.Contains(t, logs.String(), "page body exceeds limit")
	assert.Contains(t, logs.String(), `"limit_bytes":40`)
}

func TestArticleFetcher_BodyAtLimitIsNotReported(t *testing.T) {
	page := `<article><p>exact</p></article>`
	srv := newPageServer(t, http.StatusOK, page)
	var logs bytes.Buffer
	f := NewArticleFetcher(Config{MaxBodyBytes: int64(len(page))}, newBufferLogger(&logs))

	text, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "exact", text)
	assert.NotContains(t, logs.String(), "page body exceeds limit")
}

func TestArticleFetcher_LogsTruncatedURL(t *testing.T) {
	srv := newPageServer(t, http.StatusOK, `<html><body><p>No article here.</p></body></html>`)
	longURL := srv.URL + "/" + strings.Repeat("segment", 40) + "?token=secret"
	var logs bytes.Buffer
	f := NewArticleFetcher(Config{}, newBufferLogger(&logs))

	_, err := f.Fetch(context.Background(), longURL)

	require.ErrorIs(t, err, ErrNoContent)
	assert.Contains(t, logs.String(), "no article text found")
	assert.NotContains(t, logs.String(), longURL)
	assert.NotContains(t, logs.String(), "token=secret")
	assert.Contains(t, logs.String(), longURL[:constants.LogPreviewLength]+"...")
}
