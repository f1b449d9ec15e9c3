package interfaces

import "time"

// TitleResolver looks up the title registered for a document identifier.
// A false return marks the document as excluded from the final build; index
// generation silently drops entries that point at excluded documents.
type TitleResolver interface {
	Title(docname string) (string, bool)
}

// Document represents a Markdown source file with parsed metadata and
// content. Docname is the path relative to the content root without the
// file extension; it doubles as the document identifier used by the option
// registry and cross-reference resolution.
type Document struct {
	Docname      string
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically
	// SHA-256) so rebuild workflows can detect changes cheaply.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown files. The Custom map
// keeps unrecognised keys available to templates and host integrations.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
}

// TitleTable is a map-backed TitleResolver. Loaders populate it while
// scanning documents; hosts with their own environment can substitute any
// TitleResolver implementation.
type TitleTable map[string]string

// Title implements TitleResolver.
func (t TitleTable) Title(docname string) (string, bool) {
	title, ok := t[docname]
	if !ok || title == "" {
		return "", false
	}
	return title, true
}
