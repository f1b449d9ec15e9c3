package directive

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-config-docs/domain"
	"github.com/goliatone/go-config-docs/internal/logging"
	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

// anchorIcon is the glyph rendered inside the summary row's same-page link.
const anchorIcon = `<i class="icon"><svg><use href="#svg-arrow-right"></use></svg></i>`

// Config captures option-directive rendering behaviour.
type Config struct {
	// DefaultScope applies when a declaration omits the scope argument.
	DefaultScope string
	// SummaryOption names the mandatory short-description option.
	SummaryOption string
	// HasIDRepeat repeats the option key as the first row of the details table.
	HasIDRepeat bool
	// IDKeyText labels the repeated key row.
	IDKeyText string
	// Fields is the ordered set of recognised optional fields.
	Fields FieldSet
}

// Handler turns option declarations into display fragments and registers
// each option with the build's registry.
type Handler struct {
	cfg    Config
	inline interfaces.InlineParser
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

// NewHandler constructs a directive handler. Zero-value config fields fall
// back to the stock extension behaviour.
func NewHandler(cfg Config, inline interfaces.InlineParser, parser interfaces.MarkdownParser, logger interfaces.Logger) *Handler {
	if strings.TrimSpace(cfg.DefaultScope) == "" {
		cfg.DefaultScope = domain.DefaultScope
	}
	if strings.TrimSpace(cfg.SummaryOption) == "" {
		cfg.SummaryOption = "summary"
	}
	if cfg.IDKeyText == "" {
		cfg.IDKeyText = "ID: "
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = DefaultFieldSet()
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Handler{
		cfg:    cfg,
		inline: inline,
		parser: parser,
		logger: logger,
	}
}

// Fields returns the handler's ordered field set.
func (h *Handler) Fields() FieldSet {
	return h.cfg.Fields
}

// Run renders one declaration into a Fragment and registers the option with
// the registry. A declaration missing the mandatory short-description option
// produces a warning naming the key and returns a nil fragment without
// registering anything; the document still builds, the option is simply
// omitted. Genuine parse failures of embedded markup return an error.
func (h *Handler) Run(decl Declaration, registry *domain.Registry) (*Fragment, error) {
	scope := strings.TrimSpace(decl.Scope)
	if scope == "" {
		scope = h.cfg.DefaultScope
	}
	anchor := scope + ":" + decl.Key

	summarySource, ok := decl.Options[h.cfg.SummaryOption]
	if !ok {
		h.logger.Warn("option fields could not be parsed, no output was generated",
			"option", decl.Key,
			"document", decl.Document,
		)
		return nil, nil
	}

	summary, err := h.inline.ParseInline(summarySource)
	if err != nil {
		return nil, fmt.Errorf("directive: parse summary for %s: %w", decl.Key, err)
	}

	var container bytes.Buffer
	container.WriteString(`<div class="configoption">` + "\n")

	h.writeSummaryRow(&container, decl.Key, anchor, summary)

	if err := h.writeDetails(&container, decl); err != nil {
		return nil, err
	}

	container.WriteString(`</div>`)

	if registry != nil {
		registry.Add(decl.Key, scope, decl.Document)
	}

	return &Fragment{
		Key:    decl.Key,
		Scope:  scope,
		Anchor: anchor,
		Target: []byte(fmt.Sprintf(`<span id=%q></span>`, anchor)),
		HTML:   container.Bytes(),
	}, nil
}

// writeSummaryRow emits the one-line basicinfo row: literal key, parsed
// short description, and a same-page link to the anchor.
func (h *Handler) writeSummaryRow(buf *bytes.Buffer, key, anchor string, summary []byte) {
	buf.WriteString(`<div class="basicinfo">`)
	fmt.Fprintf(buf, `<span class="key"><code>%s</code></span>`, html.EscapeString(key))
	fmt.Fprintf(buf, `<span class=%q>%s</span>`, h.cfg.SummaryOption, summary)
	fmt.Fprintf(buf, `<span class="anchor"><a href="#%s">%s</a></span>`, anchor, anchorIcon)
	buf.WriteString(`</div>` + "\n")
}

// writeDetails emits the collapsible details block: the two-column field
// table (present fields only, in field-set order) followed by the parsed
// free-form body.
func (h *Handler) writeDetails(buf *bytes.Buffer, decl Declaration) error {
	buf.WriteString(`<div class="details">` + "\n")
	buf.WriteString(`<table class="fields"><colgroup><col class="field-label"/><col class="field-value"/></colgroup><tbody>` + "\n")

	if h.cfg.HasIDRepeat {
		fmt.Fprintf(buf, `<tr><td><strong>%s</strong></td><td><code>%s</code></td></tr>`+"\n",
			html.EscapeString(h.cfg.IDKeyText), html.EscapeString(decl.Key))
	}

	for _, field := range h.cfg.Fields {
		value, ok := decl.Options[field.Name]
		if !ok {
			continue
		}
		rendered, err := h.inline.ParseInline(value)
		if err != nil {
			return fmt.Errorf("directive: parse field %s for %s: %w", field.Name, decl.Key, err)
		}
		fmt.Fprintf(buf, `<tr><td><strong>%s: </strong></td><td><span class="ignoreP">%s</span></td></tr>`+"\n",
			html.EscapeString(field.Label), rendered)
	}

	buf.WriteString(`</tbody></table>` + "\n")

	if strings.TrimSpace(decl.Body) != "" {
		body, err := h.parser.Parse([]byte(decl.Body))
		if err != nil {
			return fmt.Errorf("directive: parse body for %s: %w", decl.Key, err)
		}
		buf.Write(bytes.TrimSpace(body))
		buf.WriteString("\n")
	}

	buf.WriteString(`</div>` + "\n")
	return nil
}
