package goquery

import (
	"bytes"
	"strings"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Ensure Extractor implements cardanomcp.SectionExtractor at compile time.
var _ cardanomcp.SectionExtractor = (*Extractor)(nil)

// Extractor segments HTML into heading-delimited sections.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractSections scans the document in source order. Each heading (h1-h6)
// or custom-selector match opens a new section; subsequent text and
// <pre><code> blocks accumulate into it until the next boundary. Sections
// are flat, not nested containers.
func (e *Extractor) ExtractSections(rawHTML string, cfg cardanomcp.ExtractConfig) ([]cardanomcp.ParsedSection, error) {
	sections := []cardanomcp.ParsedSection{}
	if strings.TrimSpace(rawHTML) == "" {
		return sections, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, &cardanomcp.Error{
			Code:    cardanomcp.EINVALID,
			Message: "failed to parse HTML: " + truncate(rawHTML, 60),
			Err:     err,
		}
	}

	matchers := make([]cascadia.SelectorGroup, 0, len(cfg.CustomSelectors))
	for _, selector := range cfg.CustomSelectors {
		group, err := cascadia.ParseGroup(selector)
		if err != nil {
			return nil, cardanomcp.Errorf(cardanomcp.EINVALID, "invalid custom selector %q: %v", selector, err)
		}
		matchers = append(matchers, group)
	}

	root := doc.Get(0)
	if body := doc.Find("body"); len(body.Nodes) > 0 {
		root = body.Nodes[0]
	}

	w := &sectionWalker{cfg: cfg, matchers: matchers}
	w.splitMemo = make(map[*html.Node]bool)
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		w.walk(child)
	}
	w.flush()

	for i := range w.sections {
		section := w.sections[i]
		if cfg.MinContentLength > 0 && len(section.Content) < cfg.MinContentLength {
			continue
		}
		if cfg.MaxTitleLength > 0 && len(section.Title) > cfg.MaxTitleLength {
			continue
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// sectionWalker accumulates sections during a depth-first source-order
// traversal.
type sectionWalker struct {
	cfg       cardanomcp.ExtractConfig
	matchers  []cascadia.SelectorGroup
	splitMemo map[*html.Node]bool

	sections []cardanomcp.ParsedSection
	open     bool
	title    string
	level    int
	chunks   []string
	code     []string
	span     bytes.Buffer
}

func (w *sectionWalker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if w.open {
			if text := strings.TrimSpace(n.Data); text != "" {
				w.chunks = append(w.chunks, normalizeSpace(text))
				w.renderInto(n)
			}
		}
	case html.ElementNode:
		if level, ok := w.boundaryLevel(n); ok {
			w.flush()
			w.open = true
			w.title = normalizeSpace(nodeText(n))
			w.level = level
			w.renderInto(n)
			return
		}
		if n.Data == "pre" {
			w.handlePre(n)
			return
		}
		if !w.containsSplit(n) {
			// Leaf chunk: no boundary or code block inside, so the whole
			// element belongs to the open section.
			if w.open {
				if text := normalizeSpace(nodeText(n)); text != "" {
					w.chunks = append(w.chunks, text)
				}
				w.renderInto(n)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			w.walk(child)
		}
	}
}

// handlePre routes a <pre> block to CodeBlocks or plain content depending
// on configuration.
func (w *sectionWalker) handlePre(n *html.Node) {
	if !w.open {
		return
	}
	if w.cfg.ExtractCodeBlocks {
		text := nodeText(codeChild(n))
		if text = strings.Trim(text, "\n"); text != "" {
			w.code = append(w.code, text)
		}
	} else if text := strings.TrimSpace(nodeText(n)); text != "" {
		w.chunks = append(w.chunks, text)
	}
	w.renderInto(n)
}

func (w *sectionWalker) flush() {
	if !w.open {
		return
	}
	section := cardanomcp.ParsedSection{
		Title:      w.title,
		Content:    strings.TrimSpace(strings.Join(w.chunks, " ")),
		CodeBlocks: w.code,
		Level:      w.level,
	}
	if section.CodeBlocks == nil {
		section.CodeBlocks = []string{}
	}
	if w.cfg.PreserveFormatting {
		section.OriginalHTML = w.span.String()
	}
	w.sections = append(w.sections, section)

	w.open = false
	w.title = ""
	w.level = 0
	w.chunks = nil
	w.code = nil
	w.span.Reset()
}

// boundaryLevel reports whether the element opens a new section and at
// which depth. Custom-selector matches rank 1 unless the element is itself
// a heading.
func (w *sectionWalker) boundaryLevel(n *html.Node) (int, bool) {
	if level, ok := headingLevel(n.Data); ok {
		return level, true
	}
	for _, m := range w.matchers {
		if m.Match(n) {
			return 1, true
		}
	}
	return 0, false
}

// containsSplit reports whether the subtree holds a boundary or a <pre>
// block, meaning traversal must descend instead of treating the element as
// a leaf chunk.
func (w *sectionWalker) containsSplit(n *html.Node) bool {
	if split, ok := w.splitMemo[n]; ok {
		return split
	}
	split := false
	if n.Type == html.ElementNode {
		if _, ok := w.boundaryLevel(n); ok || n.Data == "pre" {
			split = true
		}
	}
	if !split {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if w.containsSplit(child) {
				split = true
				break
			}
		}
	}
	w.splitMemo[n] = split
	return split
}

func (w *sectionWalker) renderInto(n *html.Node) {
	if !w.cfg.PreserveFormatting {
		return
	}
	_ = html.Render(&w.span, n)
}

// codeChild returns the first <code> child of a <pre>, or the <pre> itself
// when none exists.
func codeChild(pre *html.Node) *html.Node {
	for child := pre.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "code" {
			return child
		}
	}
	return pre
}

func headingLevel(tag string) (int, bool) {
	switch tag {
	case "h1":
		return 1, true
	case "h2":
		return 2, true
	case "h3":
		return 3, true
	case "h4":
		return 4, true
	case "h5":
		return 5, true
	case "h6":
		return 6, true
	}
	return 0, false
}

// nodeText collects the text content of a node's subtree.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return sb.String()
}

// normalizeSpace collapses internal whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
