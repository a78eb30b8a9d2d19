package cardanomcp

// MarkdownConverter renders Markdown to HTML and pre-validates it at the
// Markdown level.
type MarkdownConverter interface {
	// ConvertToHTML renders headings, paragraphs, fenced code blocks
	// (as <pre><code>), and GitHub-flavored task lists (as <ul><li>).
	// Fails with EINVALID on empty input.
	ConvertToHTML(markdown string) (string, error)

	// Validate fails with EINVALID on empty input and ENOHEADINGS when
	// the input contains no heading marker (# through ######).
	Validate(markdown string) error
}
