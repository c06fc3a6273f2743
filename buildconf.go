package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"github.com/tidwall/gjson"

	"github.com/thomas11/pagebake/internal/confkey"
)

const defaultBackgroundImage = "background.jpg"

var errBadConfig = errors.New("malformed configuration")

// BuildConf holds the workspace layout. All paths are absolute after
// newBuildConf.
type BuildConf struct {
	Workspace         string
	OutDir            string
	ConfigPath        string
	DefaultsDir       string
	DefaultConfigPath string
	AssetsDir         string
}

func newBuildConf(workspace, outDir string) (*BuildConf, error) {
	workspace, err := filepath.Abs(workspace)
	if err != nil {
		return nil, err
	}
	if len(outDir) == 0 {
		outDir = "dist"
	}

	defaultsDir := filepath.Join(workspace, "default")
	return &BuildConf{
		Workspace:         workspace,
		OutDir:            normalizePath(outDir, workspace),
		ConfigPath:        filepath.Join(workspace, "config.json"),
		DefaultsDir:       defaultsDir,
		DefaultConfigPath: filepath.Join(defaultsDir, "default_config.json"),
		AssetsDir:         filepath.Join(workspace, "static_build"),
	}, nil
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}

// pageConf is the part of config.json the build itself cares about.
type pageConf struct {
	BackgroundImage string
	// One of "config", "default" or "builtin".
	Source string
}

func readPageConf(bc *BuildConf) (*pageConf, error) {
	if fileExists(bc.ConfigPath) {
		return parsePageConf(bc.ConfigPath, "config")
	}

	log.Println("Warning: config.json not found")
	if !fileExists(bc.DefaultConfigPath) {
		log.Println("Warning: " + bc.DefaultConfigPath + " not found either, using the built-in background image name")
		return &pageConf{BackgroundImage: defaultBackgroundImage, Source: "builtin"}, nil
	}

	log.Printf("Copying default configuration %v to %v", bc.DefaultConfigPath, bc.ConfigPath)
	if err := copy.Copy(bc.DefaultConfigPath, bc.ConfigPath, copyOptions()); err != nil {
		return nil, fmt.Errorf("materializing default configuration: %w", err)
	}
	pc, err := parsePageConf(bc.ConfigPath, "default")
	if err != nil {
		return nil, err
	}

	img := filepath.Join(bc.Workspace, pc.BackgroundImage)
	defaultImg := filepath.Join(bc.DefaultsDir, pc.BackgroundImage)
	if !fileExists(img) && fileExists(defaultImg) {
		log.Printf("%v missing, copying it from %v", pc.BackgroundImage, bc.DefaultsDir)
		if err := copy.Copy(defaultImg, img, copyOptions()); err != nil {
			return nil, fmt.Errorf("copying default background image: %w", err)
		}
	}
	return pc, nil
}

// parsePageConf only fails on a syntax error. Missing or wrongly typed keys
// fall back to their defaults.
func parsePageConf(path, source string) (*pageConf, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: %v is not valid JSON", errBadConfig, path)
	}

	return &pageConf{
		BackgroundImage: confkey.String(raw, defaultBackgroundImage, "background", "image"),
		Source:          source,
	}, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// copyOptions makes copies follow symlinks and keep modification times.
func copyOptions() copy.Options {
	return copy.Options{
		OnSymlink:     func(string) copy.SymlinkAction { return copy.Deep },
		PreserveTimes: true,
	}
}
