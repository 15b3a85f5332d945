// internal/display/font.go
package display

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

var monoFont = mustParse(gomono.TTF)

func mustParse(ttf []byte) *opentype.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("display: embedded font: %v", err))
	}
	return f
}

// newPageFace returns a face sized to one 8-pixel page.
// Faces are not safe for concurrent use; each Canvas owns one.
func newPageFace() (font.Face, error) {
	return opentype.NewFace(monoFont, &opentype.FaceOptions{
		Size:    PageHeight,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
