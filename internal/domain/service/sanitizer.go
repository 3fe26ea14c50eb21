package service

// ContentSanitizer strips dangerous inline HTML from user-submitted markdown
// before it is persisted. Markdown-to-HTML rendering itself happens outside
// this system; sanitizing at the write boundary keeps stored documents safe
// for any downstream renderer.
type ContentSanitizer interface {
	Sanitize(markdown string) string
}
