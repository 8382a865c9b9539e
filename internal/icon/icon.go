// Package icon renders the Bond to Ten app icon: a stack of base-10
// blocks (a 10×10 "hundred" grid, a strip of ten, a single unit) on a
// white square, sized proportionally to any requested pixel dimension.
package icon

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Palette holds the artwork colors as "#RRGGBB" hex strings.
type Palette struct {
	Background string `json:"background,omitempty"`
	Hundred    string `json:"hundred,omitempty"`
	Ten        string `json:"ten,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Border     string `json:"border,omitempty"`
	Label      string `json:"label,omitempty"`
	Trim       string `json:"trim,omitempty"`
}

// DefaultPalette returns the standard Bond to Ten colors: blue hundreds,
// orange tens, green units.
func DefaultPalette() Palette {
	return Palette{
		Background: "#FFFFFF",
		Hundred:    "#1E88E5",
		Ten:        "#FF7043",
		Unit:       "#66BB6A",
		Border:     "#424242",
		Label:      "#263238",
		Trim:       "#E0E0E0",
	}
}

const (
	// labelMinSize is the smallest icon that gets text labels and cell
	// outlines; below it the hairlines just smear.
	labelMinSize = 60

	// trimMinSize is the smallest icon that gets the decorative rounded
	// border near the edges.
	trimMinSize = 120

	// labelGap is the space in pixels between a block and its label.
	labelGap = 2
)

// Renderer draws the app icon at any pixel size. A Renderer without a
// font renders the blocks but omits the "100"/"10"/"1" labels.
type Renderer struct {
	pal  Palette
	font *text.FontSource
}

// NewRenderer returns a Renderer that draws with the given palette.
func NewRenderer(pal Palette) *Renderer {
	return &Renderer{pal: pal}
}

// LoadFont equips the renderer with the label font. On error the
// renderer is left unchanged and keeps rendering without labels.
func (r *Renderer) LoadFont(path string) error {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	r.font = src
	return nil
}

// Render returns a size×size opaque image of the icon. It never fails:
// sub-elements whose geometry rounds to nothing are skipped, oversized
// elements clip at the canvas edge, and a missing font only drops the
// labels.
func (r *Renderer) Render(size int) image.Image {
	if size < 1 {
		size = 1
	}
	dc := gg.NewContext(size, size)
	dc.SetHexColor(r.pal.Background)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	_ = dc.Fill()

	margin := max(2, size/20)
	content := size - 2*margin
	spacing := max(2, content/20)

	// Hairline outlines around every cell only once they are visible.
	cellBorder := 0.0
	unitBorder := 1.0
	if size >= labelMinSize {
		cellBorder = 1
		unitBorder = 2
	}

	// Hundred block: 10×10 grid, horizontally centered at the top.
	hundredSize := min(content/3, content-2*spacing)
	hundredX := margin + (content-hundredSize)/2
	hundredY := margin
	if hundredSize > 0 {
		cell := max(1, hundredSize/10)
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				r.block(dc, hundredX+col*cell, hundredY+row*cell, cell, cell, r.pal.Hundred, cellBorder)
			}
		}
		r.label(dc, size, "100", hundredX+hundredSize/2, hundredY+hundredSize+labelGap)
	}

	// Ten block: strip of 10 cells below the hundred block.
	tenY := hundredY + hundredSize + spacing
	tenWidth := min(content*3/4, hundredSize)
	tenHeight := max(2, content/15)
	tenX := margin + (content-tenWidth)/2
	if tenWidth > 0 && tenHeight > 0 {
		cellWidth := max(1, tenWidth/10)
		for i := 0; i < 10; i++ {
			r.block(dc, tenX+i*cellWidth, tenY, cellWidth, tenHeight, r.pal.Ten, cellBorder)
		}
		r.label(dc, size, "10", tenX+tenWidth/2, tenY+tenHeight+labelGap)
	}

	// Unit block: one square below the ten strip, always outlined.
	unitY := tenY + tenHeight + spacing
	unitSide := max(4, min(content/8, hundredSize/4))
	unitX := margin + (content-unitSide)/2
	if unitSide > 0 {
		r.block(dc, unitX, unitY, unitSide, unitSide, r.pal.Unit, unitBorder)
		r.label(dc, size, "1", unitX+unitSide/2, unitY+unitSide+labelGap)
	}

	// Decorative rounded border on large icons. Cosmetic only; block
	// placement above never accounts for it.
	if size >= trimMinSize {
		dc.SetHexColor(r.pal.Trim)
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(1, 1, float64(size-2), float64(size-2), float64(size/25))
		_ = dc.Stroke()
	}

	return dc.Image()
}

// block fills one rectangle and strokes its outline. Rectangles without
// positive extent are skipped; borderWidth <= 0 means no outline.
func (r *Renderer) block(dc *gg.Context, x, y, w, h int, fill string, borderWidth float64) {
	if w < 1 || h < 1 {
		return
	}
	dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	dc.SetHexColor(fill)
	if borderWidth <= 0 {
		_ = dc.Fill()
		return
	}
	_ = dc.FillPreserve()
	dc.SetHexColor(r.pal.Border)
	dc.SetLineWidth(borderWidth)
	_ = dc.Stroke()
}

// label centers s horizontally at cx with its top edge at y. Drawn only
// when a font is loaded and the icon is big enough to keep it legible.
func (r *Renderer) label(dc *gg.Context, size int, s string, cx, y int) {
	if r.font == nil || size < labelMinSize {
		return
	}
	points := float64(max(8, size/25))
	dc.SetFont(r.font.Face(points))
	dc.SetHexColor(r.pal.Label)
	dc.DrawStringAnchored(s, float64(cx), float64(y), 0.5, 0)
}
