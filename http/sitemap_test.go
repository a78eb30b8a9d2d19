package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	mcphttp "github.com/Jimmyh-world/Cardano-MCP-sub001/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sitemapXML(urls ...string) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, u := range urls {
		body += "<url><loc>" + u + "</loc></url>"
	}
	return body + "</urlset>"
}

func TestSitemapDiscoverer_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("falls back to sitemap.xml when robots.txt is missing", func(t *testing.T) {
		t.Parallel()

		var serverURL string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				_, _ = w.Write([]byte(sitemapXML(serverURL+"/docs/a", serverURL+"/docs/b")))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()
		serverURL = server.URL

		discoverer := mcphttp.NewSitemapDiscoverer(nil)
		urls, err := discoverer.DiscoverURLs(context.Background(), server.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{serverURL + "/docs/a", serverURL + "/docs/b"}, urls)
	})

	t.Run("uses robots.txt sitemap directives", func(t *testing.T) {
		t.Parallel()

		var serverURL string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/robots.txt":
				_, _ = w.Write([]byte("User-agent: *\nSitemap: " + serverURL + "/custom-map.xml\n"))
			case "/custom-map.xml":
				_, _ = w.Write([]byte(sitemapXML(serverURL + "/docs/from-robots")))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()
		serverURL = server.URL

		discoverer := mcphttp.NewSitemapDiscoverer(nil)
		urls, err := discoverer.DiscoverURLs(context.Background(), server.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{serverURL + "/docs/from-robots"}, urls)
	})

	t.Run("resolves sitemap indexes recursively", func(t *testing.T) {
		t.Parallel()

		var serverURL string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				_, _ = w.Write([]byte(`<?xml version="1.0"?><sitemapindex><sitemap><loc>` +
					serverURL + `/pages.xml</loc></sitemap></sitemapindex>`))
			case "/pages.xml":
				_, _ = w.Write([]byte(sitemapXML(serverURL + "/docs/nested")))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()
		serverURL = server.URL

		discoverer := mcphttp.NewSitemapDiscoverer(nil)
		urls, err := discoverer.DiscoverURLs(context.Background(), server.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{serverURL + "/docs/nested"}, urls)
	})

	t.Run("filters by base path prefix and URLFilter", func(t *testing.T) {
		t.Parallel()

		var serverURL string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				_, _ = w.Write([]byte(sitemapXML(
					serverURL+"/docs/plutus",
					serverURL+"/docs/stake",
					serverURL+"/blog/post",
				)))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()
		serverURL = server.URL

		filter := &cardanomcp.URLFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/stake$`)},
		}

		discoverer := mcphttp.NewSitemapDiscoverer(nil)
		urls, err := discoverer.DiscoverURLs(context.Background(), server.URL+"/docs", filter)

		require.NoError(t, err)
		assert.Equal(t, []string{serverURL + "/docs/plutus"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		discoverer := mcphttp.NewSitemapDiscoverer(nil)
		urls, err := discoverer.DiscoverURLs(context.Background(), server.URL, nil)

		require.NoError(t, err)
		assert.Empty(t, urls)
		assert.NotNil(t, urls)
	})
}
