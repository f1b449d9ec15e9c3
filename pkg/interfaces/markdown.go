package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across invocations so hosts can share a
// single parser between directive execution and page rendering.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// InlineParser renders a Markdown snippet as inline HTML without a wrapping
// block element. Directive option values (short descriptions, field values)
// are rich text and flow through this contract rather than being escaped as
// plain strings.
type InlineParser interface {
	ParseInline(snippet string) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}
