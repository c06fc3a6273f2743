package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/thomas11/pagebake/internal/confkey"
)

type siteConf struct {
	Title, Author, URL string

	BackgroundImage string
	BackgroundColor string

	// Absolute path of the page's Markdown source.
	ContentPath string
}

// readSiteConf reads workspace/config.json. A missing file gives the
// defaults; every key is optional.
func readSiteConf(workspace string) (*siteConf, error) {
	conf := siteConf{
		Title:           "Home",
		URL:             "http://localhost:9999/",
		BackgroundImage: "background.jpg",
		BackgroundColor: "#202124",
		ContentPath:     "content/index.md",
	}

	path := filepath.Join(workspace, "config.json")
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	case !gjson.ValidBytes(raw):
		return nil, fmt.Errorf("%v is not valid JSON", path)
	default:
		conf.Title = confkey.String(raw, conf.Title, "site", "title")
		conf.Author = confkey.String(raw, conf.Author, "site", "author")
		conf.URL = confkey.String(raw, conf.URL, "site", "url")
		conf.BackgroundImage = confkey.String(raw, conf.BackgroundImage, "background", "image")
		conf.BackgroundColor = confkey.String(raw, conf.BackgroundColor, "background", "color")
		conf.ContentPath = confkey.String(raw, conf.ContentPath, "content")
	}

	if !filepath.IsAbs(conf.ContentPath) {
		conf.ContentPath = filepath.Join(workspace, conf.ContentPath)
	}
	return &conf, nil
}
