package cardanomcp

import "strings"

// DefaultAllowedTags is the default whitelist for HTML validation. It
// covers structural, text, table, and media tags commonly found in
// documentation pages, including head-level tags so raw pages can be
// gatekept before cleaning.
var DefaultAllowedTags = []string{
	"html", "head", "body", "title", "meta", "link", "script", "style",
	"main", "article", "section", "nav", "header", "footer", "aside",
	"div", "span", "p", "a", "blockquote", "pre", "code",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol", "li", "dl", "dt", "dd",
	"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
	"em", "strong", "b", "i", "u", "s", "del", "ins", "sup", "sub",
	"small", "mark", "abbr", "kbd", "samp", "var",
	"img", "figure", "figcaption", "picture", "source", "video", "audio",
	"br", "hr", "input", "label", "details", "summary",
}

// voidTags need no matching close tag, with or without an explicit "/>".
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {},
}

type validateConfig struct {
	allowedTags map[string]struct{}
	requireTags bool
	lenient     bool
}

// ValidateOption configures ValidateHTML.
type ValidateOption func(*validateConfig)

// WithAllowedTags replaces the default tag whitelist.
func WithAllowedTags(tags ...string) ValidateOption {
	return func(cfg *validateConfig) {
		cfg.allowedTags = make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			cfg.allowedTags[strings.ToLower(tag)] = struct{}{}
		}
	}
}

// WithRequireTags makes input without any tags fail with ENOTAGS.
func WithRequireTags() ValidateOption {
	return func(cfg *validateConfig) {
		cfg.requireTags = true
	}
}

// WithLenientParsing suppresses the tag balance checks (unmatched closing
// tag, unclosed tags). Syntax and whitelist checks still apply.
func WithLenientParsing() ValidateOption {
	return func(cfg *validateConfig) {
		cfg.lenient = true
	}
}

// ValidateHTML structurally validates raw or generated HTML against tag
// syntax, a tag whitelist, and open/close balance. Empty or whitespace-only
// input always validates successfully, regardless of options.
func ValidateHTML(input string, opts ...ValidateOption) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	cfg := &validateConfig{}
	WithAllowedTags(DefaultAllowedTags...)(cfg)
	for _, opt := range opts {
		opt(cfg)
	}

	var stack []string
	tagCount := 0
	i, n := 0, len(input)

	for i < n {
		if input[i] != '<' {
			i++
			continue
		}
		if i+1 >= n {
			return Errorf(EMALFORMEDTAG, "malformed tag syntax at offset %d", i)
		}

		switch {
		case input[i+1] == '!':
			// Comment or doctype: not a tag, skip.
			if strings.HasPrefix(input[i:], "<!--") {
				end := strings.Index(input[i+4:], "-->")
				if end < 0 {
					i = n
				} else {
					i += 4 + end + 3
				}
			} else {
				end := strings.IndexByte(input[i:], '>')
				if end < 0 {
					i = n
				} else {
					i += end + 1
				}
			}

		case input[i+1] == '/':
			// Closing tag: name must immediately follow "</".
			j := i + 2
			if j >= n || !isTagNameStart(input[j]) {
				return Errorf(EMALFORMEDTAG, "malformed tag syntax at offset %d", i)
			}
			start := j
			for j < n && isTagNameChar(input[j]) {
				j++
			}
			name := strings.ToLower(input[start:j])
			for j < n && isHTMLSpace(input[j]) {
				j++
			}
			if j >= n || input[j] != '>' {
				return Errorf(EMALFORMEDTAG, "malformed tag syntax at offset %d", i)
			}
			i = j + 1

			if _, ok := cfg.allowedTags[name]; !ok {
				return Errorf(EUNSUPPORTEDTAG, "unsupported tag <%s>", name)
			}
			tagCount++
			if cfg.lenient {
				continue
			}
			if _, void := voidTags[name]; void {
				continue
			}
			if len(stack) == 0 || stack[len(stack)-1] != name {
				return Errorf(EUNMATCHEDCLOSING, "unmatched closing tag </%s>", name)
			}
			stack = stack[:len(stack)-1]

		default:
			// Opening tag: "<" must be immediately followed by a letter.
			if !isTagNameStart(input[i+1]) {
				return Errorf(EMALFORMEDTAG, "malformed tag syntax at offset %d", i)
			}
			j := i + 1
			start := j
			for j < n && isTagNameChar(input[j]) {
				j++
			}
			name := strings.ToLower(input[start:j])

			// Scan attributes up to the unquoted ">", tracking whether the
			// last non-space character was "/" (self-closing).
			selfClosing := false
			closed := false
			var quote byte
			for j < n {
				c := input[j]
				if quote != 0 {
					if c == quote {
						quote = 0
					}
					j++
					continue
				}
				if c == '>' {
					closed = true
					break
				}
				switch c {
				case '"', '\'':
					quote = c
				case '/':
					selfClosing = true
				case '<':
					return Errorf(EMALFORMEDTAG, "malformed tag syntax at offset %d", i)
				default:
					if !isHTMLSpace(c) {
						selfClosing = false
					}
				}
				j++
			}
			if !closed {
				return Errorf(EMALFORMEDTAG, "unterminated tag <%s>", name)
			}
			i = j + 1

			if _, ok := cfg.allowedTags[name]; !ok {
				return Errorf(EUNSUPPORTEDTAG, "unsupported tag <%s>", name)
			}
			tagCount++
			if cfg.lenient || selfClosing {
				continue
			}
			if _, void := voidTags[name]; void {
				continue
			}
			stack = append(stack, name)
		}
	}

	if cfg.requireTags && tagCount == 0 {
		return Errorf(ENOTAGS, "no tags found")
	}
	if !cfg.lenient && len(stack) > 0 {
		return Errorf(EUNCLOSEDTAGS, "unclosed tags detected: <%s>", strings.Join(stack, ">, <"))
	}
	return nil
}

func isTagNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isTagNameChar(c byte) bool {
	return isTagNameStart(c) || (c >= '0' && c <= '9') || c == '-'
}

func isHTMLSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
