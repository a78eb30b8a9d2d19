package cardanomcp

// DefaultRemoveSelectors lists the elements stripped as noise before text
// extraction.
var DefaultRemoveSelectors = []string{"script", "style", "nav", "footer", "header", "aside"}

// MainContentExtractor isolates the primary content of a page. Cleaner
// implementations satisfy it mechanically; boilerplate-removal libraries
// can provide it directly.
type MainContentExtractor interface {
	ExtractMainContent(html string) (string, error)
}

// Cleaner removes noise from HTML and extracts text content.
type Cleaner interface {
	// CleanHTML removes HTML comments and whole <script> and <style>
	// blocks, returning the remainder structurally unchanged. Empty or
	// whitespace-only input is returned unchanged.
	CleanHTML(html string) (string, error)

	// ExtractTextContent parses the HTML into an element tree, removes
	// noise elements, and returns the trimmed text with entities decoded.
	ExtractTextContent(html string) (string, error)

	// ExtractMainContent runs the same removal pass, then returns the
	// trimmed text of the first non-empty element among main, article,
	// and body, in that priority order.
	ExtractMainContent(html string) (string, error)
}
