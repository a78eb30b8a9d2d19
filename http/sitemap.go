package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/beevik/etree"
)

// Ensure SitemapDiscoverer implements cardanomcp.SitemapDiscoverer.
var _ cardanomcp.SitemapDiscoverer = (*SitemapDiscoverer)(nil)

// maxSitemapDepth bounds recursion through nested sitemap indexes.
const maxSitemapDepth = 5

// SitemapDiscoverer finds documentation page URLs from website sitemaps
// over HTTP.
type SitemapDiscoverer struct {
	client *http.Client
}

// NewSitemapDiscoverer creates a SitemapDiscoverer with the given client.
// If client is nil, http.DefaultClient is used.
func NewSitemapDiscoverer(client *http.Client) *SitemapDiscoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapDiscoverer{client: client}
}

// DiscoverURLs finds all page URLs from a site's sitemap. Returns an empty
// slice (not nil) when no sitemap is found.
//
// When baseURL has a non-root path (e.g. https://docs.cardano.org/learn/),
// only URLs under that path prefix are returned.
func (s *SitemapDiscoverer) DiscoverURLs(ctx context.Context, baseURL string, filter *cardanomcp.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, cardanomcp.Errorf(cardanomcp.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps live at the domain root regardless of the base path.
	root := *base
	root.Path = ""

	sitemapURLs, err := s.findSitemaps(ctx, &root)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seen := make(map[string]bool)
	var pages []string
	for _, sitemapURL := range sitemapURLs {
		urls, err := s.readSitemap(ctx, sitemapURL, 0)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if seen[u] {
				continue
			}
			seen[u] = true
			if pathPrefix != "" && !underPathPrefix(u, pathPrefix) {
				continue
			}
			if !filter.Match(u) {
				continue
			}
			pages = append(pages, u)
		}
	}

	if pages == nil {
		pages = []string{}
	}
	return pages, nil
}

// findSitemaps checks robots.txt for Sitemap directives and falls back to
// /sitemap.xml.
func (s *SitemapDiscoverer) findSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if body, err := s.get(ctx, robotsURL); err == nil {
		sitemaps := parseRobots(body)
		body.Close()
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	body, err := s.get(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	body.Close()
	return []string{fallback}, nil
}

// readSitemap parses one sitemap document, recursing into sitemap indexes.
func (s *SitemapDiscoverer) readSitemap(ctx context.Context, sitemapURL string, depth int) ([]string, error) {
	if depth >= maxSitemapDepth {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap %s: %w", sitemapURL, err)
	}

	docRoot := doc.Root()
	if docRoot == nil {
		return nil, nil
	}

	switch docRoot.Tag {
	case "sitemapindex":
		var urls []string
		for _, child := range docRoot.SelectElements("sitemap") {
			loc := child.SelectElement("loc")
			if loc == nil {
				continue
			}
			nested, err := s.readSitemap(ctx, strings.TrimSpace(loc.Text()), depth+1)
			if err != nil {
				return nil, err
			}
			urls = append(urls, nested...)
		}
		return urls, nil
	case "urlset":
		var urls []string
		for _, child := range docRoot.SelectElements("url") {
			loc := child.SelectElement("loc")
			if loc == nil {
				continue
			}
			if u := strings.TrimSpace(loc.Text()); u != "" {
				urls = append(urls, u)
			}
		}
		return urls, nil
	default:
		return nil, nil
	}
}

// get performs a GET and returns the body for 200 responses.
func (s *SitemapDiscoverer) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, cardanomcp.Errorf(cardanomcp.EHTTPSTATUS, "HTTP %d for %s", resp.StatusCode, rawURL)
	}
	return resp.Body, nil
}

// parseRobots extracts Sitemap: directives from robots.txt content.
func parseRobots(body io.Reader) []string {
	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	return sitemaps
}

// underPathPrefix checks that a URL's path sits under the prefix at a path
// boundary (/docs matches /docs/intro but not /documentation).
func underPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix)
}
