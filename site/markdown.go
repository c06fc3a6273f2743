package site

import (
	"bufio"
	"bytes"

	"github.com/russross/blackfriday/v2"
)

const htmlFlags = blackfriday.UseXHTML |
	blackfriday.Smartypants |
	blackfriday.SmartypantsFractions |
	blackfriday.SmartypantsLatexDashes

const extensions = blackfriday.NoIntraEmphasis |
	blackfriday.Tables |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough

type renderer interface {
	render(in []byte) string
}

type blackfridayHTMLRenderer struct {
	extensions blackfriday.Extensions
}

func newMarkdownRenderer() renderer {
	return &blackfridayHTMLRenderer{extensions}
}

// The HTML renderer keeps per-document state, so each call gets its own.
func (b *blackfridayHTMLRenderer) render(in []byte) string {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: htmlFlags})
	return string(blackfriday.Run(stripHighlight(in), blackfriday.WithRenderer(r), blackfriday.WithExtensions(b.extensions)))
}

// For now, just strip the highlighting directives.
func stripHighlight(text []byte) []byte {
	out := bytes.NewBuffer(make([]byte, 0, len(text)))
	s := bufio.NewScanner(bytes.NewReader(text))
	s.Buffer(make([]byte, 0, 64*1024), len(text)+1)

	for s.Scan() {
		line := s.Bytes()
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("!highlight")) {
			continue
		}
		out.Write(line)
		out.WriteByte('\n')
	}

	return out.Bytes()
}
