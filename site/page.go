package site

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const dateStampFormat = "2006-01-02"

type category string

func (c category) String() string { return string(c) }

func (c category) Id() string { return strings.ReplaceAll(c.String(), " ", "_") }

// page is the front page's content: a header of "key: value" lines, an
// empty line, and a Markdown body.
type page struct {
	Title, Blurb string
	Date         time.Time
	Body         []byte
	Categories   []category
}

// Called from templates
func (p *page) FormatDate() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("January 2, 2006")
}

// readPage reads the page at path. A missing file is an empty page.
func readPage(path string) (*page, error) {
	fileContent, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &page{}, nil
	}
	if err != nil {
		return nil, err
	}
	return parsePage(path, fileContent)
}

func parsePage(path string, fileContent []byte) (*page, error) {
	sepLen := 2
	firstEmptyLine := bytes.Index(fileContent, []byte("\n\n"))
	if firstEmptyLine == -1 {
		firstEmptyLine = bytes.Index(fileContent, []byte("\r\n\r\n"))
		sepLen = 4

		if firstEmptyLine == -1 {
			return nil, fmt.Errorf("weird page %v: no empty line after the header", path)
		}
	}

	p := &page{
		Body:       fileContent[firstEmptyLine+sepLen:],
		Categories: make([]category, 0, 5),
	}

	headerLines := bytes.Split(fileContent[:firstEmptyLine], []byte("\n"))
	for _, l := range headerLines {
		l = bytes.TrimRight(l, "\r")
		colon := bytes.Index(l, []byte(":"))
		if colon == -1 {
			return nil, fmt.Errorf("invalid header line in page %v: %s", path, l)
		}

		key, val := bytes.TrimSpace(l[:colon]), bytes.TrimSpace(l[colon+1:])
		switch string(key) {
		case "title":
			p.Title = string(val)
		case "blurb":
			p.Blurb = string(val)
		case "categories":
			for _, c := range bytes.Split(val, []byte(",")) {
				if c = bytes.TrimSpace(c); len(c) > 0 {
					p.Categories = append(p.Categories, category(c))
				}
			}
		case "date":
			date, err := time.Parse(dateStampFormat, string(val))
			if err != nil {
				return nil, fmt.Errorf("invalid date in page %v: %w", path, err)
			}
			p.Date = date
		default:
			log.Printf("  Skipping unknown header field %s in page %v", key, path)
		}
	}

	return p, nil
}
