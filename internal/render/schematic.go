// Package render draws a 2-D schematic of the pipe as an SVG document:
// a vertical tube with its end conditions, airflow annotation, and one
// marker per side hole. It performs no acoustic math of its own.
package render

import (
	"fmt"
	"strings"

	"github.com/wldblbll/Tube-Resonance/pkg/acoustics"
)

const (
	viewWidth  = 400
	viewHeight = 600
	marginY    = 60
)

// ContentType is the MIME type of the rendered schematic.
const ContentType = "image/svg+xml"

// Schematic renders the pipe described by p. The mouth is drawn at the
// bottom; vertical placement is to scale with the pipe length while the
// bore width is exaggerated enough to stay visible.
func Schematic(p acoustics.Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	scale := float64(viewHeight-2*marginY) / p.Geometry.Length
	top := float64(marginY)
	bottom := float64(viewHeight - marginY)
	cx := float64(viewWidth) / 2

	width := p.Geometry.Diameter * scale
	if width < 12 {
		width = 12
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`+"\n", viewWidth, viewHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", viewWidth, viewHeight)

	// Tube body.
	fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="rgba(0,0,255,0.1)" stroke="blue" stroke-width="2"/>`+"\n",
		cx-width/2, top, width, bottom-top)

	// Mouth end is always open.
	openEnd(&b, cx, bottom, width)
	label(&b, cx-width/2-10, bottom, "end", "Open")

	if p.End == acoustics.OpenBoth {
		openEnd(&b, cx, top, width)
		label(&b, cx-width/2-10, top, "end", "Open")
	} else {
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="8" fill="gray" stroke="gray"/>`+"\n",
			cx-width/2, top-8, width)
		label(&b, cx-width/2-10, top, "end", "Closed")
	}

	// Airflow arrow into the mouth.
	fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="red" stroke-width="2"/>`+"\n",
		cx, bottom+40, cx, bottom+12)
	fmt.Fprintf(&b, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="red"/>`+"\n",
		cx-4, bottom+16, cx+4, bottom+16, cx, bottom+8)
	label(&b, cx+8, bottom+32, "air", fmt.Sprintf("Air: %.1f m/s", p.AirSpeed))

	// Side holes on the right wall, numbered in input order.
	for i, h := range p.Holes {
		y := bottom - h.Position*p.Geometry.Length*scale
		r := h.Diameter * scale / 2
		if r < 3 {
			r = 3
		}
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="white" stroke="black"/>`+"\n",
			cx+width/2, y, r)
		label(&b, cx+width/2+r+6, y+4, "hole", fmt.Sprintf("T%d", i+1))
	}

	b.WriteString("</svg>\n")

	return []byte(b.String()), nil
}

func openEnd(b *strings.Builder, cx, y, width float64) {
	fmt.Fprintf(b, `<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="none" stroke="green"/>`+"\n",
		cx, y, width/2, width/4)
}

func label(b *strings.Builder, x, y float64, class, text string) {
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" class="%s" font-size="12" text-anchor="%s">%s</text>`+"\n",
		x, y, class, anchorFor(class), text)
}

func anchorFor(class string) string {
	if class == "end" {
		return "end"
	}
	return "start"
}
