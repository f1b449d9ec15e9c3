package builder

import "html/template"

// pageTemplate wraps a rendered document body into a standalone HTML page
// with the extension's assets linked in.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.CSSHref}}"/>
<script src="{{.JSHref}}" defer></script>
</head>
<body>
<main class="document">
{{.Body}}
</main>
</body>
</html>
`))

// indexTemplate renders the grouped options listing page.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.CSSHref}}"/>
<script src="{{.JSHref}}" defer></script>
</head>
<body>
<main class="configindex">
<h1 id="{{.Slug}}">{{.Title}}</h1>
{{range .Groups}}
<section>
<h2>{{.Scope}}</h2>
<ul>
{{range .Entries}}<li><a href="{{.Href}}"><code>{{.Name}}</code></a>{{if .Extra}}<span class="extra">{{.Extra}}</span>{{end}}</li>
{{end}}</ul>
</section>
{{end}}
</main>
</body>
</html>
`))

type pageContext struct {
	Title   string
	CSSHref string
	JSHref  string
	Body    template.HTML
}

type indexContext struct {
	Title   string
	Slug    string
	CSSHref string
	JSHref  string
	Groups  []indexGroupContext
}

type indexGroupContext struct {
	Scope   string
	Entries []indexEntryContext
}

type indexEntryContext struct {
	Name  string
	Href  string
	Extra template.HTML
}
