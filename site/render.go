package site

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

type templateParam struct {
	PageTitle string
	SiteTitle string
	Author    string
	FeedURL   string

	Background      string
	BackgroundColor string
}

type pageTemplateParam struct {
	templateParam
	*page
	RenderedBody template.HTML
}

type templateEngine struct {
	toHtml renderer
	index  *template.Template
}

func newTemplateEngine(r renderer) templateEngine {
	return templateEngine{
		toHtml: r,
		index:  template.Must(template.ParseFS(templateFS, "templates/global.html", "templates/index.html")),
	}
}

// renderPage writes the full HTML document and also returns the rendered
// body on its own, for the feed.
func (te *templateEngine) renderPage(tp templateParam, p *page, w io.Writer) (string, error) {
	renderedBody := template.HTML(te.toHtml.render(p.Body))
	if len(p.Title) > 0 {
		tp.PageTitle = p.Title
	}

	param := pageTemplateParam{
		templateParam: tp,
		page:          p,
		RenderedBody:  renderedBody,
	}
	return string(renderedBody), te.index.ExecuteTemplate(w, "index.html", param)
}
