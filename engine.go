// Command pagebake publishes a dynamic web application to static hosting. It
// renders the application's front page in-process into dist/index.html and
// copies the page's background image next to it.
//
// The workspace layout is fixed:
//
//	config.json                  site configuration (optional)
//	default/default_config.json  copied to config.json when that is missing
//	default/<image>              default background image
//	static_build/<image>         preferred background image location
//	<image>                      fallback background image location
//	dist/                        output
//
// Existing output files are kept as <name>.bak before being replaced.
package main

import (
	"fmt"
	"log"
)

type builder struct {
	conf *BuildConf
	app  appFactory
}

type buildResult struct {
	IndexPath string
	PageConf  *pageConf
	Asset     assetCopy
	AssetErr  error
}

func newBuilder(conf *BuildConf, app appFactory) *builder {
	return &builder{conf: conf, app: app}
}

// Build runs the whole pipeline once. A returned error is fatal; problems
// copying the background image are reported in the result instead.
func (b *builder) Build() (*buildResult, error) {
	log.Println("Writing static page to " + b.conf.OutDir)
	if err := ensureOutDir(b.conf.OutDir); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	pc, err := readPageConf(b.conf)
	if err != nil {
		return nil, err
	}

	h, err := loadApp(b.app, b.conf.Workspace)
	if err != nil {
		return nil, err
	}

	log.Println("Rendering / in-process")
	page, err := renderFrontPage(h)
	if err != nil {
		return nil, err
	}

	indexPath, err := writeIndex(b.conf.OutDir, page.Body)
	if err != nil {
		return nil, fmt.Errorf("writing index.html: %w", err)
	}

	res := &buildResult{IndexPath: indexPath, PageConf: pc}
	log.Println("Copying static assets")
	res.Asset, res.AssetErr = copyAsset(b.conf, pc.BackgroundImage)
	if res.AssetErr != nil {
		log.Printf("Error copying %v: %v", pc.BackgroundImage, res.AssetErr)
	}
	return res, nil
}
