// Package optionindex derives the grouped options listing for a dedicated
// index page from a build's merged registry.
package optionindex

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-config-docs/domain"
	"github.com/goliatone/go-config-docs/pkg/interfaces"
)

// Entry is one row of the index listing.
type Entry struct {
	// Name is the display name, the option key.
	Name string
	// Subtype is the indent level; always 0, the listing is flat.
	Subtype int
	// Document is the declaring document.
	Document string
	// Anchor is the in-page link fragment inside Document.
	Anchor string
	// Extra carries disambiguation context for duplicated keys: the
	// declaring document's title, suffixed with the sub-scope rendered as
	// inline code when one exists. Empty for unambiguous rows.
	Extra string
	// Qualifier and Description are reserved by the host's index row
	// contract and stay empty.
	Qualifier   string
	Description string
}

// Group collects the entries sharing one scope prefix.
type Group struct {
	Scope   string
	Entries []Entry
}

// Index generates the grouped, deduplicated options listing.
type Index struct {
	name      string
	localname string
	titles    interfaces.TitleResolver
}

// New constructs an index. Name and localname default to the stock
// extension's values when empty.
func New(name, localname string, titles interfaces.TitleResolver) *Index {
	if strings.TrimSpace(name) == "" {
		name = "options"
	}
	if strings.TrimSpace(localname) == "" {
		localname = "Configuration options"
	}
	return &Index{name: name, localname: localname, titles: titles}
}

// Name returns the index identifier used in reference targets.
func (ix *Index) Name() string { return ix.name }

// Localname returns the human-readable index title.
func (ix *Index) Localname() string { return ix.localname }

// Generate produces the grouped listing from the merged registry. Records are
// sorted by (display name, anchor), grouped by the scope prefix (the scope
// text before the first "-"), and deduplicated within each group. Records
// whose declaring document has no registered title are dropped silently: the
// document was excluded from the build. Output is deterministic for a given
// record set regardless of registration order.
func (ix *Index) Generate(registry *domain.Registry) []Group {
	if registry == nil {
		return nil
	}

	records := registry.Objects()
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].DisplayKey != records[j].DisplayKey {
			return records[i].DisplayKey < records[j].DisplayKey
		}
		if records[i].Anchor != records[j].Anchor {
			return records[i].Anchor < records[j].Anchor
		}
		// Duplicate anchors can span documents; the document breaks the
		// tie so listing order never depends on registration order.
		return records[i].Document < records[j].Document
	})

	// First pass: find keys that appear more than once under the same
	// (scope prefix, name, document, anchor) identity. Those need extra
	// context in the listing to stay tellable apart.
	type identity struct {
		scopePrefix string
		name        string
		document    string
		anchor      string
	}
	seen := map[identity]struct{}{}
	duplicates := map[identity]struct{}{}
	for _, record := range records {
		prefix, _ := splitScope(record.Anchor)
		id := identity{prefix, record.DisplayKey, record.Document, record.Anchor}
		if _, ok := seen[id]; ok {
			duplicates[id] = struct{}{}
		} else {
			seen[id] = struct{}{}
		}
	}

	groups := map[string][]Entry{}
	for _, record := range records {
		title, ok := ix.title(record.Document)
		if !ok {
			// Document was excluded from the final build.
			continue
		}

		prefix, suffix := splitScope(record.Anchor)
		id := identity{prefix, record.DisplayKey, record.Document, record.Anchor}

		extra := ""
		if _, dup := duplicates[id]; dup {
			extra = title
			if suffix != "" {
				extra = fmt.Sprintf("%s: <code class=\"literal\">%s</code>", extra, html.EscapeString(suffix))
			}
		}

		entry := Entry{
			Name:     record.DisplayKey,
			Subtype:  0,
			Document: record.Document,
			Anchor:   record.Anchor,
			Extra:    extra,
		}
		if !containsEntry(groups[prefix], entry) {
			groups[prefix] = append(groups[prefix], entry)
		}
	}

	scopes := make([]string, 0, len(groups))
	for scope := range groups {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	out := make([]Group, 0, len(scopes))
	for _, scope := range scopes {
		out = append(out, Group{Scope: scope, Entries: groups[scope]})
	}
	return out
}

func (ix *Index) title(docname string) (string, bool) {
	if ix.titles == nil {
		return "", false
	}
	return ix.titles.Title(docname)
}

// splitScope partitions a record anchor into the scope prefix (text before
// the first "-" of the scope) and the sub-scope suffix (text after it, if
// any). Scope names embed a secondary grouping convention: "db-replica"
// groups under "db" with suffix "replica".
func splitScope(anchor string) (prefix, suffix string) {
	scope, _, _ := strings.Cut(anchor, ":")
	prefix, suffix, _ = strings.Cut(scope, "-")
	return prefix, suffix
}

func containsEntry(entries []Entry, entry Entry) bool {
	for _, existing := range entries {
		if existing == entry {
			return true
		}
	}
	return false
}
