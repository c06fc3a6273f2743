package site

import (
	"log"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

func (s *Site) renderFeed(p *page, renderedBody string) ([]byte, error) {
	title := s.conf.Title
	if len(p.Title) > 0 {
		title = p.Title
	}
	pubDate := p.Date
	if pubDate.IsZero() {
		pubDate = time.Now()
	}

	feed := atom.Feed{
		Title:   s.conf.Title,
		Link:    s.conf.URL,
		PubDate: pubDate,
	}
	author := s.conf.Author
	if len(author) == 0 {
		author = s.conf.Title
	}
	feed.AddAuthor(atom.Author{
		Name: author,
		Uri:  s.conf.URL,
	})

	e := &atom.Entry{
		Title:       title,
		Description: p.Blurb,
		Link:        s.conf.URL,
		PubDate:     pubDate,
		Content:     renderedBody,
	}
	for _, cat := range p.Categories {
		e.AddCategory(atom.Category{Term: string(cat)})
	}
	feed.AddEntry(e)

	errs := feed.Validate()
	if len(errs) > 0 {
		log.Println("Atom feed is not valid!")
		for _, verr := range errs {
			log.Println(verr.Error())
		}
		return nil, errs[0]
	}

	return feed.GenXml()
}
