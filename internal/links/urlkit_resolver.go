package links

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// URLKitResolverOptions configures the go-urlkit backed resolver.
type URLKitResolverOptions struct {
	Manager *urlkit.RouteManager
	// Group names the route group holding the documentation route.
	Group string
	// Route names the route used for document pages.
	Route string
	// DocParam is the route parameter receiving the docname (defaults to "doc").
	DocParam string
}

// URLKitResolver resolves document URLs through a go-urlkit RouteManager.
// The anchor travels as a URL fragment appended to the built route.
type URLKitResolver struct {
	manager  *urlkit.RouteManager
	group    string
	route    string
	docParam string
}

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.DocParam == "" {
		opts.DocParam = "doc"
	}
	return &URLKitResolver{
		manager:  opts.Manager,
		group:    strings.TrimSpace(opts.Group),
		route:    strings.TrimSpace(opts.Route),
		docParam: opts.DocParam,
	}
}

// Resolve implements Resolver using the configured route manager.
func (r *URLKitResolver) Resolve(fromDoc, toDoc, anchor string) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("links: urlkit resolver not configured")
	}

	group, err := r.safeGroup()
	if err != nil {
		return "", err
	}

	builder, err := r.safeBuilder(group)
	if err != nil {
		return "", err
	}

	url, err := builder.WithParam(r.docParam, toDoc).Build()
	if err != nil {
		return "", fmt.Errorf("links: build url for %s: %w", toDoc, err)
	}
	if anchor != "" {
		url += "#" + anchor
	}
	return url, nil
}

func (r *URLKitResolver) safeGroup() (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: unknown urlkit group %q: %v", r.group, rec)
		}
	}()
	group = r.manager.Group(r.group)
	return group, err
}

func (r *URLKitResolver) safeBuilder(group *urlkit.Group) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("links: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(r.route)
	return builder, err
}
