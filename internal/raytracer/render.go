package raytracer

import (
	"sync/atomic"

	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/bhlog"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/dynamo"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/raster"
)

var log = bhlog.New("raytracer")

// Progress reports how many of an image's rows have been traced so
// far. It is safe to read from any goroutine while a Render is in
// flight.
type Progress struct {
	completed atomic.Int64
	total     int64
}

func (p *Progress) Completed() int64 { return p.completed.Load() }
func (p *Progress) Total() int64     { return p.total }

// Render traces every pixel of an H x W image across threads
// row-blocks, using tr.Camera's dimensions. Rows are partitioned
// exactly as dynamo.ParallelFor partitions any range: thread t owns a
// contiguous block, the last thread absorbs the remainder, and no
// goroutine mutates another's rows. progress, if non-nil, is updated
// after each row completes.
func Render(tr Tracer, threads int, progress *Progress) *raster.Image {
	width, height := tr.Camera.Width, tr.Camera.Height
	img := raster.NewImage(width, height)

	if progress != nil {
		progress.completed.Store(0)
		progress.total = int64(height)
	}

	log.Infof("render start: %dx%d, %d threads", width, height, threads)

	dynamo.ParallelFor(height, 1, threads, func(rowStart, rowEnd int) {
		for j := rowStart; j < rowEnd; j++ {
			for i := 0; i < width; i++ {
				color := tr.TracePixel(i, j)
				img.Set(i, j, raster.Pixel{R: color[0], G: color[1], B: color[2]})
			}
			if progress != nil {
				progress.completed.Add(1)
			}
		}
	})

	log.Infof("render complete: %d rows", height)
	return img
}
