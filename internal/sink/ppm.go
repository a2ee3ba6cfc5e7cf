// Package sink holds the external-collaborator writers that turn a
// rendered raster.Image into bytes on disk: PPM (P6), CSV, and a JSON
// run-metadata sidecar. None of these are part of the rendering core;
// write failures here are reported to the caller, never folded back
// into the render itself.
package sink

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/raster"
)

// WritePPM encodes img as a binary (P6) PPM file: header
// "P6\n<W> <H>\n255\n" followed by W*H RGB byte triples in row-major
// order, each channel clamped to [0, 1] before scaling to a byte.
func WritePPM(path string, img *raster.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	for _, p := range img.Pixels {
		if _, err := w.Write([]byte{toByte(p.R), toByte(p.G), toByte(p.B)}); err != nil {
			return err
		}
	}

	return w.Flush()
}

func toByte(c float64) byte {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return byte(math.Round(c * 255))
}
