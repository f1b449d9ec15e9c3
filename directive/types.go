package directive

// Declaration is one parsed option declaration delivered by the host's
// directive layer. Options hold the short-description value and any optional
// fields; unrecognised option names never reach the handler (the parsing
// layer rejects them).
type Declaration struct {
	// Key is the option identifier, the directive's first argument.
	Key string
	// Scope is the optional second argument; empty means the default scope.
	Scope string
	// Document identifies the source document carrying the declaration.
	Document string
	// Options maps field names (and the summary option) to their raw values.
	// Values are rich text and are parsed as embedded markup when rendered.
	Options map[string]string
	// Body is the directive's free-form content, parsed as block markup into
	// the details section.
	Body string
}

// Fragment is the rendered output of one option declaration: a hidden anchor
// target plus a container holding the one-line summary row and the
// collapsible details block.
type Fragment struct {
	Key    string
	Scope  string
	Anchor string
	// Target is the hidden anchor element bound to Anchor, emitted before
	// the container so in-page links work independent of rendering order.
	Target []byte
	// HTML is the configoption container (summary row + details block).
	HTML []byte
}

// Rendered returns the complete fragment markup: target followed by container.
func (f *Fragment) Rendered() []byte {
	if f == nil {
		return nil
	}
	out := make([]byte, 0, len(f.Target)+len(f.HTML)+1)
	out = append(out, f.Target...)
	out = append(out, '\n')
	out = append(out, f.HTML...)
	return out
}
