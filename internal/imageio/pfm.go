package imageio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// SavePFM writes the framebuffer as a Portable Float Map: a "PF" (color)
// header followed by little-endian float32 RGB triples, bottom-to-top
// per the format's scanline order (the "-1.0" scale line signals
// little-endian to readers).
func (f *Framebuffer) SavePFM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "PF\n%d %d\n-1.0\n", f.Width, f.Height); err != nil {
		return err
	}

	buf := make([]byte, 12)
	for j := 0; j < f.Height; j++ {
		srcRow := f.Height - 1 - j
		for i := 0; i < f.Width; i++ {
			p := f.At(i, srcRow)
			binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(p.R))
			binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(p.G))
			binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(p.B))
			if _, err := w.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}
