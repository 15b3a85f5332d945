// internal/display/canvas.go
package display

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Canvas is the 128x64 framebuffer frames are composed on before being shown.
// Text is laid out on 8-pixel pages; scaled text spans scale pages.
type Canvas struct {
	img  *image1bit.VerticalLSB
	face font.Face
}

// NewCanvas returns a dark canvas.
func NewCanvas() (*Canvas, error) {
	face, err := newPageFace()
	if err != nil {
		return nil, err
	}
	return &Canvas{
		img:  image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height)),
		face: face,
	}, nil
}

// Image exposes the framebuffer.
func (c *Canvas) Image() *image1bit.VerticalLSB { return c.img }

// Bounds returns the panel rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Clear fills the whole canvas; invert lights every pixel.
func (c *Canvas) Clear(invert bool) {
	fill(c.img, image1bit.Bit(invert))
}

// Text draws s at normal scale on page.
func (c *Canvas) Text(page int, s string, invert bool) {
	c.TextScaled(page, s, 1, invert)
}

// TextScaled draws s starting at page, each pixel magnified scale times.
// Inverted text is dark on a lit band the width of the text. Overflow is clipped.
func (c *Canvas) TextScaled(page int, s string, scale int, invert bool) {
	if scale < 1 || page < 0 || page >= Pages || s == "" {
		return
	}

	w := font.MeasureString(c.face, s).Ceil()
	if w <= 0 {
		return
	}

	fg := image1bit.Bit(!invert)
	glyphs := image1bit.NewVerticalLSB(image.Rect(0, 0, w, PageHeight))
	fill(glyphs, !fg)

	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(fg),
		Face: c.face,
		Dot:  fixed.P(0, c.face.Metrics().Ascent.Round()),
	}
	d.DrawString(s)

	top := page * PageHeight
	dst := image.Rect(0, top, w*scale, top+PageHeight*scale)
	xdraw.NearestNeighbor.Scale(c.img, dst, glyphs, glyphs.Bounds(), xdraw.Src, nil)
}

// Bitmap draws ic with its top-left corner at (x, y). Every icon pixel is written,
// so a bitmap fully replaces what was under it.
func (c *Canvas) Bitmap(x, y int, ic Icon, invert bool) {
	w, h := ic.Size()
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			p := image.Pt(x+ix, y+iy)
			if !p.In(c.img.Rect) {
				continue
			}
			c.img.SetBit(p.X, p.Y, image1bit.Bit(ic.Lit(ix, iy) != invert))
		}
	}
}

// Lit reports whether pixel (x, y) is on.
func (c *Canvas) Lit(x, y int) bool {
	return bool(c.img.BitAt(x, y))
}

// Show pushes the whole canvas to dev.
func (c *Canvas) Show(dev Device) error {
	if dev == nil {
		return errors.New("display: nil device")
	}
	return dev.Draw(c.img.Bounds(), c.img, image.Point{})
}

func fill(img *image1bit.VerticalLSB, b image1bit.Bit) {
	v := byte(0x00)
	if b {
		v = 0xFF
	}
	for i := range img.Pix {
		img.Pix[i] = v
	}
}
