package surface

import (
	"fmt"
	"image"
	"math"
	"strconv"
)

// Inset is a rectangular visibility mask given as margins from each edge.
type Inset struct {
	Top, Right, Bottom, Left float64
}

// String renders the inset in CSS clip-path form.
func (in Inset) String() string {
	return fmt.Sprintf("inset(%spx %spx %spx %spx)", px(in.Top), px(in.Right), px(in.Bottom), px(in.Left))
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Visible returns the part of a w×h surface left showing after the inset,
// or an empty rectangle when the margins cover it. Fractional margins round
// outward, so a partly hidden row stays hidden.
func (in Inset) Visible(w, h int) image.Rectangle {
	x0, y0 := int(math.Ceil(in.Left)), int(math.Ceil(in.Top))
	x1, y1 := w-int(math.Ceil(in.Right)), h-int(math.Ceil(in.Bottom))
	if x0 >= x1 || y0 >= y1 {
		return image.Rectangle{}
	}
	// image.Rect would swap inverted corners, so check them first.
	r := image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
	r = r.Intersect(image.Rect(0, 0, w, h))
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// Style is how the surface is composited: its opacity and clip.
type Style struct {
	Opacity float64
	Clip    Inset
}

// Hidden reports whether the surface contributes nothing on screen.
func (s Style) Hidden() bool {
	return s.Opacity <= 0
}
