// Package debug renders terrain scenes into images for inspection.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes preview images as PNG files.
type Capture struct {
	outputDir string
	prefix    string
}

// NewCapture creates a capture handler writing into outputDir.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// SetOutputDir sets the output directory for captures.
func (c *Capture) SetOutputDir(dir string) {
	c.outputDir = dir
}

// Save writes img under a timestamped filename and returns the path.
func (c *Capture) Save(img image.Image) (string, error) {
	return c.SaveAs(img, c.Filename())
}

// SaveAs writes img to name. Relative names are placed in the output dir.
func (c *Capture) SaveAs(img image.Image, name string) (string, error) {
	if c.outputDir != "" && !filepath.IsAbs(name) && filepath.Dir(name) == "." {
		name = filepath.Join(c.outputDir, name)
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return name, nil
}

// Filename generates a capture filename without saving.
func (c *Capture) Filename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return fmt.Sprintf("%s_%s.png", c.prefix, timestamp)
}
