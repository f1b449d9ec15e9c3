// Package links maps cross-document references to concrete URLs. The build
// session asks a Resolver for the href of every resolved option reference;
// hosts with routed documentation can swap in the go-urlkit implementation.
package links

import (
	"path"
	"strings"
)

// Resolver builds the URL for a link from one document to an anchor in
// another.
type Resolver interface {
	Resolve(fromDoc, toDoc, anchor string) (string, error)
}

// RelativeResolver produces document-relative links for static output where
// every document renders to "<docname><suffix>" alongside its directory
// structure.
type RelativeResolver struct {
	// Suffix is appended to the target docname; defaults to ".html".
	Suffix string
}

// Resolve implements Resolver. Same-document references collapse to a bare
// fragment so in-page links survive renames of the output file.
func (r RelativeResolver) Resolve(fromDoc, toDoc, anchor string) (string, error) {
	suffix := r.Suffix
	if suffix == "" {
		suffix = ".html"
	}

	if fromDoc == toDoc {
		return "#" + anchor, nil
	}

	target := relativePath(path.Dir(fromDoc), toDoc) + suffix
	if anchor != "" {
		target += "#" + anchor
	}
	return target, nil
}

// AbsoluteResolver prefixes every link with a fixed base URL. Hosts serving
// the output from a known root use it so references survive page moves.
type AbsoluteResolver struct {
	BaseURL string
	// Suffix is appended to the target docname; defaults to ".html".
	Suffix string
}

// Resolve implements Resolver.
func (r AbsoluteResolver) Resolve(fromDoc, toDoc, anchor string) (string, error) {
	suffix := r.Suffix
	if suffix == "" {
		suffix = ".html"
	}

	target := strings.TrimSuffix(r.BaseURL, "/") + "/" + toDoc + suffix
	if anchor != "" {
		target += "#" + anchor
	}
	return target, nil
}

// RelativeTo computes the path of a root-relative target (such as a
// published asset) as seen from fromDoc's directory.
func RelativeTo(fromDoc, target string) string {
	return relativePath(path.Dir(fromDoc), target)
}

// relativePath computes the slash-separated path of target relative to the
// directory base. Both arguments use forward slashes; base "." means the
// content root.
func relativePath(base, target string) string {
	if base == "." || base == "" {
		return target
	}

	baseParts := strings.Split(base, "/")
	targetParts := strings.Split(target, "/")

	common := 0
	for common < len(baseParts) && common < len(targetParts)-1 {
		if baseParts[common] != targetParts[common] {
			break
		}
		common++
	}

	var out []string
	for i := common; i < len(baseParts); i++ {
		out = append(out, "..")
	}
	out = append(out, targetParts[common:]...)
	return strings.Join(out, "/")
}
