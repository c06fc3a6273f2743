// Package site is the web application pagebake publishes: a single page
// rendered from a Markdown file, its Atom feed, and its background image.
// Settings come from the workspace's config.json.
package site

import (
	"bytes"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// Site serves the page of one workspace.
type Site struct {
	workspace string
	conf      *siteConf
	engine    templateEngine
	router    chi.Router
}

// New reads the workspace configuration and sets up the routes.
func New(workspace string) (*Site, error) {
	conf, err := readSiteConf(workspace)
	if err != nil {
		return nil, err
	}

	s := &Site{
		workspace: workspace,
		conf:      conf,
		engine:    newTemplateEngine(newMarkdownRenderer()),
	}

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/index.xml", s.handleFeed)
	r.Get("/*", s.handleAsset)
	s.router = r

	return s, nil
}

func (s *Site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Site) templateParam() templateParam {
	return templateParam{
		PageTitle:       s.conf.Title,
		SiteTitle:       s.conf.Title,
		Author:          s.conf.Author,
		FeedURL:         "index.xml",
		Background:      s.conf.BackgroundImage,
		BackgroundColor: s.conf.BackgroundColor,
	}
}

func (s *Site) handleIndex(w http.ResponseWriter, r *http.Request) {
	p, err := readPage(s.conf.ContentPath)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not read page content", http.StatusInternalServerError)
		return
	}

	var b bytes.Buffer
	if _, err := s.engine.renderPage(s.templateParam(), p, &b); err != nil {
		log.Println(err)
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b.Bytes())
}

func (s *Site) handleFeed(w http.ResponseWriter, r *http.Request) {
	p, err := readPage(s.conf.ContentPath)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not read page content", http.StatusInternalServerError)
		return
	}

	atomXml, err := s.renderFeed(p, s.engine.toHtml.render(p.Body))
	if err != nil {
		http.Error(w, "could not render feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	w.Write(atomXml)
}

// handleAsset serves the background image from the same places the static
// build looks for it, so the page works both live and exported.
func (s *Site) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if name != s.conf.BackgroundImage {
		http.NotFound(w, r)
		return
	}

	for _, dir := range []string{filepath.Join(s.workspace, "static_build"), s.workspace} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
	}
	http.NotFound(w, r)
}
