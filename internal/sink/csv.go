package sink

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/raster"
)

// WriteCSV encodes img as "x,y,r,g,b" rows, one per pixel, with
// four-decimal floating-point RGB values.
func WriteCSV(path string, img *raster.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "r", "g", "b"}); err != nil {
		return err
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			row := []string{
				strconv.Itoa(x),
				strconv.Itoa(y),
				strconv.FormatFloat(p.R, 'f', 4, 64),
				strconv.FormatFloat(p.G, 'f', 4, 64),
				strconv.FormatFloat(p.B, 'f', 4, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return nil
}
