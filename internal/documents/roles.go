package documents

import (
	"fmt"
	"regexp"
)

// RoleRewriter substitutes inline cross-reference roles in Markdown source
// with resolved replacements before the page is rendered. References use the
// role syntax
//
//	{config-cert:option}`db:timeout`
//	{config-cert:option}`timeout`
//
// where a bare target defaults to the registry's scope during resolution.
type RoleRewriter struct {
	pattern *regexp.Regexp
}

// NewRoleRewriter builds a rewriter for the given domain and role names.
func NewRoleRewriter(domainName, roleName string) *RoleRewriter {
	if domainName == "" {
		domainName = "config-cert"
	}
	if roleName == "" {
		roleName = "option"
	}
	marker := regexp.QuoteMeta("{" + domainName + ":" + roleName + "}")
	return &RoleRewriter{
		pattern: regexp.MustCompile(marker + "`([^`\n]+)`"),
	}
}

// Targets lists every role target referenced in src, in source order.
func (r *RoleRewriter) Targets(src []byte) []string {
	matches := r.pattern.FindAllSubmatch(src, -1)
	if len(matches) == 0 {
		return nil
	}
	targets := make([]string, 0, len(matches))
	for _, match := range matches {
		targets = append(targets, string(match[1]))
	}
	return targets
}

// Rewrite replaces each role occurrence using the supplied resolve callback.
// The callback returns the replacement markup and whether resolution
// succeeded; failed resolutions render the target as plain inline code, so a
// broken reference degrades to text instead of breaking the page.
func (r *RoleRewriter) Rewrite(src []byte, resolve func(target string) (string, bool)) []byte {
	return r.pattern.ReplaceAllFunc(src, func(match []byte) []byte {
		target := string(r.pattern.FindSubmatch(match)[1])
		if replacement, ok := resolve(target); ok {
			return []byte(replacement)
		}
		return []byte(fmt.Sprintf("`%s`", target))
	})
}
