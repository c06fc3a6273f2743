package main

import (
	"fmt"
	"io"
	"path/filepath"
)

func printDeployInstructions(w io.Writer, conf *BuildConf) {
	out, err := filepath.Rel(conf.Workspace, conf.OutDir)
	if err != nil {
		out = conf.OutDir
	}

	fmt.Fprintln(w, "\nStatic build complete!")
	fmt.Fprintf(w, "\nStatic HTML written to %v\n", filepath.Join(conf.OutDir, "index.html"))
	fmt.Fprintln(w, "\nHow to deploy:")

	fmt.Fprintln(w, "\nOption 1: Cloudflare Pages")
	fmt.Fprintln(w, "1. Log in to the Cloudflare dashboard and open Pages")
	fmt.Fprintln(w, "2. Create a new project connected to your GitHub/GitLab repository")
	fmt.Fprintln(w, "3. Build settings:")
	fmt.Fprintln(w, "   - Build command: go run github.com/thomas11/pagebake@latest")
	fmt.Fprintf(w, "   - Build output directory: %v\n", out)
	fmt.Fprintln(w, "4. Deploy and wait for the build to finish")
	fmt.Fprintln(w, "5. Open the generated URL")

	fmt.Fprintln(w, "\nOption 2: GitHub Pages")
	fmt.Fprintln(w, "1. Automatic: a GitHub Actions workflow runs the build on every push to main")
	fmt.Fprintln(w, "2. Manual:")
	fmt.Fprintln(w, "   - Run the build from the workspace root")
	fmt.Fprintf(w, "   - Publish the contents of %v to your web server\n", out)

	fmt.Fprintln(w, "\nOption 3: other static hosts (Vercel, Netlify, ...)")
	fmt.Fprintln(w, "1. Connect your GitHub/GitLab repository")
	fmt.Fprintln(w, "2. Build settings:")
	fmt.Fprintln(w, "   - Build command: go run github.com/thomas11/pagebake@latest")
	fmt.Fprintf(w, "   - Output directory: %v\n", out)
	fmt.Fprintln(w, "3. Deploy and wait for the build to finish")

	fmt.Fprintln(w, "\nNotes:")
	fmt.Fprintf(w, "1. Everything to publish is in %v\n", out)
	fmt.Fprintln(w, "2. The page URL depends on your hosting service")
}
