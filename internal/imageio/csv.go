package imageio

import (
	"bufio"
	"fmt"
	"io"
)

// SaveCSV writes the framebuffer as one row per image row, each pixel a
// comma-separated linear RGB triple, top-to-bottom and left-to-right
// (the framebuffer's native storage order; this format has no flip
// convention to honor).
func (f *Framebuffer) SaveCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			p := f.At(i, j)
			if _, err := fmt.Fprintf(bw, "%g,%g,%g", p.R, p.G, p.B); err != nil {
				return err
			}
			if i < f.Width-1 {
				if _, err := bw.WriteString(","); err != nil {
					return err
				}
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
