package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

func ensureOutDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.FileMode(0775)); err != nil {
			return err
		}
		log.Println("Created output directory " + dir)
	}
	return nil
}

// backupFile copies path to path.bak, replacing any older backup.
func backupFile(path string) (string, error) {
	backup := path + ".bak"
	if err := copy.Copy(path, backup, copyOptions()); err != nil {
		return "", err
	}
	return backup, nil
}

// writeIndex writes body to outDir/index.html, keeping the previous file as
// index.html.bak. A failed backup does not stop the write.
func writeIndex(outDir string, body []byte) (string, error) {
	htmlPath := filepath.Join(outDir, "index.html")
	backupPath := htmlPath + ".bak"

	if fileExists(htmlPath) && filepath.Clean(htmlPath) != filepath.Clean(backupPath) {
		if backup, err := backupFile(htmlPath); err != nil {
			log.Printf("Could not back up %v: %v", htmlPath, err)
		} else {
			log.Println("Backed up existing index.html to " + backup)
		}
	}

	if err := os.WriteFile(htmlPath, body, os.FileMode(0664)); err != nil {
		return "", err
	}
	log.Println("Wrote " + htmlPath)
	return htmlPath, nil
}

type assetCopy int

const (
	assetCopied assetCopy = iota
	assetMissing
	assetSameFile
)

func (a assetCopy) String() string {
	switch a {
	case assetCopied:
		return "copied"
	case assetMissing:
		return "skipped, source not found"
	case assetSameFile:
		return "skipped, source is the destination"
	}
	return "unknown"
}

// findAsset returns the first candidate for name that is a regular file
// (after following symlinks): the static build assets folder first, then the
// workspace root.
func findAsset(bc *BuildConf, name string) (string, bool) {
	for _, dir := range []string{bc.AssetsDir, bc.Workspace} {
		src := filepath.Join(dir, name)
		if info, err := os.Stat(src); err == nil && info.Mode().IsRegular() {
			return src, true
		}
	}
	return "", false
}

// copyAsset exports the named asset into the output directory, backing up
// whatever was there before. A symlink at the destination is replaced by a
// regular file, never written through.
func copyAsset(bc *BuildConf, name string) (assetCopy, error) {
	src, ok := findAsset(bc, name)
	if !ok {
		log.Printf("Asset %v not found as a file in %v or %v, skipping copy", name, bc.AssetsDir, bc.Workspace)
		return assetMissing, nil
	}

	dst := filepath.Join(bc.OutDir, name)
	if linkInfo, err := os.Lstat(dst); err == nil {
		if dstInfo, err := os.Stat(dst); err == nil {
			srcInfo, err := os.Stat(src)
			if err != nil {
				return assetMissing, err
			}
			if os.SameFile(srcInfo, dstInfo) {
				log.Printf("%v and %v are the same file, skipping copy", src, dst)
				return assetSameFile, nil
			}

			backup, err := backupFile(dst)
			if err != nil {
				return assetMissing, err
			}
			log.Println("Backed up existing asset to " + backup)
		}

		if linkInfo.Mode()&os.ModeSymlink != 0 {
			if err := os.Remove(dst); err != nil {
				return assetMissing, err
			}
		}
	}

	if err := copy.Copy(src, dst, copyOptions()); err != nil {
		return assetMissing, err
	}
	log.Printf("Copied %v to %v", src, dst)
	return assetCopied, nil
}
