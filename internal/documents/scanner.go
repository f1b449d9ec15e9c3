package documents

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/goliatone/go-config-docs/directive"
	"github.com/goliatone/go-config-docs/internal/logging"
	"github.com/goliatone/go-config-docs/pkg/interfaces"
	"github.com/goliatone/go-slug"
)

// Segment is a slice of a document body: either plain Markdown or one parsed
// option declaration. Segments preserve source order so the build session can
// interleave rendered Markdown with directive fragments.
type Segment struct {
	Markdown    []byte
	Declaration *directive.Declaration
}

// ScannerConfig controls directive extraction.
type ScannerConfig struct {
	// DomainName and DirectiveName form the fence marker, e.g.
	// "{config-cert:option}".
	DomainName    string
	DirectiveName string
	// SummaryOption names the mandatory short-description option.
	SummaryOption string
	// Fields enumerates the recognised optional fields. Declarations
	// carrying unknown option names are rejected with a warning before the
	// directive handler ever sees them.
	Fields directive.FieldSet
}

// Scanner extracts option declarations from Markdown document bodies.
// Declarations use a fenced directive block:
//
//	```{config-cert:option} timeout server
//	:summary: Request timeout
//	:unit: seconds
//
//	Free-form body content.
//	```
//
// Option values are single-line; the body starts after the first blank line.
type Scanner struct {
	marker        string
	summaryOption string
	fields        directive.FieldSet
	logger        interfaces.Logger
}

// NewScanner constructs a scanner. Empty config fields fall back to the
// stock extension names.
func NewScanner(cfg ScannerConfig, logger interfaces.Logger) *Scanner {
	domainName := strings.TrimSpace(cfg.DomainName)
	if domainName == "" {
		domainName = "config-cert"
	}
	directiveName := strings.TrimSpace(cfg.DirectiveName)
	if directiveName == "" {
		directiveName = "option"
	}
	summaryOption := strings.TrimSpace(cfg.SummaryOption)
	if summaryOption == "" {
		summaryOption = "summary"
	}
	fields := cfg.Fields
	if len(fields) == 0 {
		fields = directive.DefaultFieldSet()
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Scanner{
		marker:        "{" + domainName + ":" + directiveName + "}",
		summaryOption: summaryOption,
		fields:        fields,
		logger:        logger,
	}
}

var optionLinePattern = regexp.MustCompile(`^:([A-Za-z0-9_-]+):[ \t]*(.*)$`)

// Scan splits a document body into Markdown and declaration segments.
// Malformed or unrecognised declarations are dropped with a warning; the
// surrounding Markdown always survives, so a bad directive never breaks the
// page.
func (s *Scanner) Scan(doc *interfaces.Document) []Segment {
	if doc == nil {
		return nil
	}

	lines := bytes.Split(doc.Body, []byte("\n"))
	fenceOpen := "```" + s.marker

	var segments []Segment
	var markdown bytes.Buffer

	flush := func() {
		if markdown.Len() == 0 {
			return
		}
		segment := make([]byte, markdown.Len())
		copy(segment, markdown.Bytes())
		segments = append(segments, Segment{Markdown: segment})
		markdown.Reset()
	}

	for i := 0; i < len(lines); i++ {
		line := string(lines[i])
		if !strings.HasPrefix(line, fenceOpen) {
			markdown.Write(lines[i])
			markdown.WriteByte('\n')
			continue
		}

		args := strings.Fields(strings.TrimPrefix(line, fenceOpen))
		body, next, terminated := collectFence(lines, i+1)
		i = next

		if !terminated {
			s.logger.Warn("unterminated option directive",
				"document", doc.Docname,
			)
			continue
		}

		decl, ok := s.buildDeclaration(doc.Docname, args, body)
		if !ok {
			continue
		}

		flush()
		segments = append(segments, Segment{Declaration: decl})
	}

	flush()
	return segments
}

// collectFence gathers the lines of a fenced block starting at from,
// returning the block contents, the index of the closing fence, and whether
// the fence was terminated.
func collectFence(lines [][]byte, from int) ([]string, int, bool) {
	var body []string
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(string(lines[i])) == "```" {
			return body, i, true
		}
		body = append(body, string(lines[i]))
	}
	return nil, len(lines) - 1, false
}

func (s *Scanner) buildDeclaration(docname string, args, block []string) (*directive.Declaration, bool) {
	if len(args) == 0 {
		s.logger.Warn("option directive requires an identifier argument",
			"document", docname,
		)
		return nil, false
	}

	key := args[0]
	scope := ""
	if len(args) > 1 {
		scope = args[1]
	}
	if !validIdentifier(key) || (scope != "" && !validIdentifier(scope)) {
		s.logger.Warn("option directive has an invalid identifier or scope",
			"option", key,
			"scope", scope,
			"document", docname,
		)
		return nil, false
	}

	options := map[string]string{}
	bodyStart := 0
	for i, line := range block {
		if strings.TrimSpace(line) == "" {
			bodyStart = i + 1
			break
		}
		match := optionLinePattern.FindStringSubmatch(line)
		if match == nil {
			bodyStart = i
			break
		}
		name := match[1]
		if name != s.summaryOption && !s.fields.Contains(name) {
			s.logger.Warn("option directive carries an unrecognised field",
				"option", key,
				"field", name,
				"document", docname,
			)
			return nil, false
		}
		options[name] = match[2]
		bodyStart = i + 1
	}

	body := ""
	if bodyStart < len(block) {
		body = strings.TrimSpace(strings.Join(block[bodyStart:], "\n"))
	}

	return &directive.Declaration{
		Key:      key,
		Scope:    scope,
		Document: docname,
		Options:  options,
		Body:     body,
	}, true
}

// validIdentifier holds keys and scopes to the slug rules so derived
// anchors stay clean URL fragments; the scope separator, whitespace, and
// punctuation never reach the registry.
func validIdentifier(value string) bool {
	if value == "" {
		return false
	}
	return slug.IsValid(value)
}
