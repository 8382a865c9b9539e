// Package catalog holds the fixed iOS icon size table, the
// platform-mandated file names, the asset-catalog manifest, and the
// batch drivers that fill an .appiconset directory.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bondtoten/iconset/internal/icon"
	"github.com/bondtoten/iconset/internal/paths"
	"github.com/bondtoten/iconset/internal/resample"
)

// Size is one entry of the icon table: the rendered pixel dimension and
// the Apple scale label it serves.
type Size struct {
	Pixels int
	Scale  string
}

// Sizes is the full iOS icon catalog, in the order the files are
// generated. It is built once and never mutated.
var Sizes = []Size{
	{20, "@1x"}, {40, "@2x"}, {60, "@3x"},
	{29, "@1x"}, {58, "@2x"}, {87, "@3x"},
	{40, "@1x"}, {80, "@2x"}, {120, "@3x"},
	{120, "@2x"}, {180, "@3x"},
	{76, "@1x"}, {152, "@2x"},
	{167, "@2x"},
	{1024, "@1x"},
}

// ScaleFactor parses the scale label into its numeric factor.
func (s Size) ScaleFactor() (int, error) {
	switch s.Scale {
	case "@1x":
		return 1, nil
	case "@2x":
		return 2, nil
	case "@3x":
		return 3, nil
	}
	return 0, fmt.Errorf("unknown scale label %q", s.Scale)
}

// Base returns the point size this entry serves (pixels divided by the
// scale factor), or 0 for an unrecognized scale label.
func (s Size) Base() float64 {
	factor, err := s.ScaleFactor()
	if err != nil {
		return 0
	}
	return float64(s.Pixels) / float64(factor)
}

// documentedBases are the nominal point sizes of the iOS icon catalog.
// Anything else has no sanctioned file name.
var documentedBases = map[float64]bool{
	20: true, 29: true, 40: true, 60: true, 76: true, 83.5: true, 1024: true,
}

// FileName returns the catalog file name for this entry, in the form
// Icon-App-<base>x<base><scale>.png. The App Store icon keeps its fixed
// 1024 name whatever the scale label says. A (pixels, scale) pair
// outside the documented catalog is an error.
func (s Size) FileName() (string, error) {
	if s.Pixels == 1024 {
		return "Icon-App-1024x1024@1x.png", nil
	}
	factor, err := s.ScaleFactor()
	if err != nil {
		return "", err
	}
	base := float64(s.Pixels) / float64(factor)
	if !documentedBases[base] {
		return "", fmt.Errorf("no catalog name for %dpx %s (%gpt is not a documented size)", s.Pixels, s.Scale, base)
	}
	b := strconv.FormatFloat(base, 'f', -1, 64)
	return fmt.Sprintf("Icon-App-%sx%s%s.png", b, b, s.Scale), nil
}

type manifestImage struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	FileName string `json:"filename"`
	Scale    string `json:"scale"`
}

type manifestInfo struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

type manifestDoc struct {
	Images []manifestImage `json:"images"`
	Info   manifestInfo    `json:"info"`
}

// manifestMatrix is the standard iPhone/iPad/App Store requirement
// list. Several entries share one file across idioms, exactly like the
// platform's stock catalog.
var manifestMatrix = []struct {
	idiom string
	base  float64
	scale int
}{
	{"iphone", 20, 2}, {"iphone", 20, 3},
	{"iphone", 29, 1}, {"iphone", 29, 2}, {"iphone", 29, 3},
	{"iphone", 40, 2}, {"iphone", 40, 3},
	{"iphone", 60, 2}, {"iphone", 60, 3},
	{"ipad", 20, 1}, {"ipad", 20, 2},
	{"ipad", 29, 1}, {"ipad", 29, 2},
	{"ipad", 40, 1}, {"ipad", 40, 2},
	{"ipad", 76, 1}, {"ipad", 76, 2},
	{"ipad", 83.5, 2},
	{"ios-marketing", 1024, 1},
}

// Manifest renders the Contents.json manifest covering the standard
// idiom/size/scale matrix with the table's file names.
func Manifest() ([]byte, error) {
	images := make([]manifestImage, 0, len(manifestMatrix))
	for _, m := range manifestMatrix {
		entry := Size{Pixels: int(m.base * float64(m.scale)), Scale: fmt.Sprintf("@%dx", m.scale)}
		name, err := entry.FileName()
		if err != nil {
			return nil, err
		}
		b := strconv.FormatFloat(m.base, 'f', -1, 64)
		images = append(images, manifestImage{
			Size:     b + "x" + b,
			Idiom:    m.idiom,
			FileName: name,
			Scale:    fmt.Sprintf("%dx", m.scale),
		})
	}
	doc := manifestDoc{
		Images: images,
		Info:   manifestInfo{Version: 1, Author: "xcode"},
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteManifest writes Contents.json into dir.
func WriteManifest(dir string) error {
	data, err := Manifest()
	if err != nil {
		return err
	}
	return paths.AtomicWrite(filepath.Join(dir, paths.ManifestFileName), data)
}

// Generate renders every table entry into dir, one progress line per
// file plus a summary on out. The first failure aborts the batch;
// written reports how many files landed before it.
func Generate(dir string, r *icon.Renderer, out io.Writer) (written int, err error) {
	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	for _, s := range Sizes {
		name, err := s.FileName()
		if err != nil {
			return written, err
		}
		img := r.Render(s.Pixels)
		if err := writePNG(filepath.Join(dir, name), img); err != nil {
			return written, err
		}
		written++
		fmt.Fprintf(out, "  wrote %s (%dpx %s)\n", name, s.Pixels, s.Scale)
	}
	fmt.Fprintf(out, "%d icons written to %s\n", written, dir)
	return written, nil
}

// ResizeFrom resamples the image at srcPath into every table entry in
// dir. The source must load before anything is created, so a bad source
// leaves no output behind. After that, per-entry failures are reported
// on out and the batch keeps going; any failure makes the returned
// error non-nil.
func ResizeFrom(dir, srcPath string, out io.Writer) (written, failed int, err error) {
	src, err := resample.Load(srcPath)
	if err != nil {
		return 0, 0, err
	}
	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return 0, 0, fmt.Errorf("creating output dir: %w", err)
	}
	for _, s := range Sizes {
		name, nameErr := s.FileName()
		if nameErr != nil {
			return written, failed, nameErr
		}
		img := resample.Fit(src, s.Pixels)
		if writeErr := writePNG(filepath.Join(dir, name), img); writeErr != nil {
			failed++
			fmt.Fprintf(out, "  failed %s: %v\n", name, writeErr)
			continue
		}
		written++
		fmt.Fprintf(out, "  wrote %s (%dpx %s)\n", name, s.Pixels, s.Scale)
	}
	fmt.Fprintf(out, "%d icons written to %s\n", written, dir)
	if failed > 0 {
		return written, failed, fmt.Errorf("%d of %d icons failed", failed, len(Sizes))
	}
	return written, failed, nil
}

// writePNG encodes img and writes it atomically, so a crash mid-batch
// never leaves a truncated icon under the real name.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return paths.AtomicWrite(path, buf.Bytes())
}
