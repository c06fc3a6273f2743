package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/radovskyb/watcher"

	"github.com/thomas11/pagebake/site"
)

var workspace = flag.String("workspace", ".", "Workspace directory holding config.json, default/ and static_build/")
var outDir = flag.String("outDir", "dist", "Output directory, relative to the workspace")
var appName = flag.String("app", "app", "Name of the application to render")
var serve = flag.Bool("serve", false, "Start a localhost:9999 server for the output directory")
var watch = flag.Bool("watch", false, "Keep running and rebuild on changes to the workspace.")
var quiet = flag.Bool("quiet", false, "Don't print deployment instructions.")

// apps lists the applications that can be rendered, by name.
var apps = map[string]appFactory{
	"app": func(dir string) (http.Handler, error) {
		s, err := site.New(dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

func main() {
	flag.Parse()

	conf, err := newBuildConf(*workspace, *outDir)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.Chdir(conf.Workspace); err != nil {
		log.Fatal(err)
	}

	b := newBuilder(conf, registeredApp(apps, *appName))

	if _, err := b.Build(); err != nil {
		log.Fatal(err)
	}
	if !*quiet {
		printDeployInstructions(os.Stdout, conf)
	}

	if *watch && *serve {
		go rebuildOnChange(b)
	}

	if *serve {
		serveSite(conf.OutDir)
	} else if *watch {
		rebuildOnChange(b)
	}
}

func serveSite(dir string) {
	port := ":9999"

	http.Handle("/", http.FileServer(http.Dir(dir)))
	log.Printf("Serving %v on %v.", dir, port)
	log.Fatal(http.ListenAndServe(port, nil))
}

// rebuildOnChange blocks, rebuilding whenever something in the workspace
// outside the output directory changes. Failed rebuilds are only logged.
func rebuildOnChange(b *builder) {
	log.Println("Watching " + b.conf.Workspace + " for changes...")

	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case ev := <-w.Event:
				b.rebuild(ev)
			case err := <-w.Error:
				log.Println(err)
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.Ignore(b.conf.OutDir); err != nil {
		log.Fatalln(err)
	}
	if err := w.AddRecursive(b.conf.Workspace); err != nil {
		log.Fatalln(err)
	}

	if err := w.Start(time.Millisecond * 200); err != nil {
		log.Fatalln(err)
	}
}

// rebuild handles one watcher event. Errors are logged, never fatal, so the
// watcher keeps running.
func (b *builder) rebuild(ev watcher.Event) error {
	log.Printf("Change detected: %v %v", ev.Op, ev.Path)
	_, err := b.Build()
	if err != nil {
		log.Printf("Rebuild failed: %v", err)
	}
	return err
}
