package render

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/geometrian/spectraltracer/internal/imageio"
	"github.com/geometrian/spectraltracer/internal/prng"
)

// scheduler is the tile queue and shared progress-reporting state every
// worker goroutine coordinates through. The tile list and last-print
// timestamp share one mutex, exactly as the pieces they protect are
// always touched together (spec.md §5: "single mutex" for both).
// The active-worker count is a separate atomic, and render continuation
// is an atomic.Bool used only as a hint workers poll at tile boundaries.
type scheduler struct {
	mu        sync.Mutex
	tiles     []Tile
	lastPrint time.Time

	numTilesStart int
	startedAt     time.Time

	active    atomic.Int32
	keepGoing atomic.Bool
}

// popTile claims the next tile (from the back of the list, so the first
// tile produced by buildTiles is the first rendered) and reports render
// progress if at least 10ms elapsed since the last report, all under the
// scheduler's single mutex.
func (s *scheduler) popTile(progress io.Writer) (Tile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tiles) == 0 {
		s.keepGoing.Store(false)
		return Tile{}, false
	}

	if progress != nil && time.Since(s.lastPrint) >= 10*time.Millisecond {
		s.printProgress(progress)
		s.lastPrint = time.Now()
	}

	n := len(s.tiles) - 1
	tile := s.tiles[n]
	s.tiles = s.tiles[:n]
	return tile, true
}

// printProgress reports the fraction of tiles consumed so far and a
// linear extrapolation of remaining time from elapsed wall-clock. Must
// be called with s.mu held.
func (s *scheduler) printProgress(w io.Writer) {
	done := s.numTilesStart - len(s.tiles)
	frac := float64(done) / float64(s.numTilesStart)
	elapsed := time.Since(s.startedAt)
	if done == 0 {
		fmt.Fprint(w, "\rRender started")
		return
	}
	if len(s.tiles) == 0 {
		fmt.Fprintf(w, "\rRender completed in %s            \n", elapsed.Round(time.Second))
		return
	}
	eta := time.Duration(float64(elapsed) * (1 - frac) / frac)
	fmt.Fprintf(w, "\rRender %.2f%% (ETA %s)          ", frac*100, eta.Round(time.Second))
}

// Render drives opts.Scene through the whole framebuffer: numWorkers
// goroutines each own a PCG-32 stream seeded from their worker index,
// atomically claim tiles until none remain, and render every pixel of
// each tile they hold. The goroutine that observes the last worker
// finishing (the active-worker count reaching zero) invokes onComplete,
// mirroring the original's "last thread saves the image" contract.
// progress may be nil to suppress progress reporting (e.g. in tests).
func Render(opts *Options, fb *imageio.Framebuffer, numWorkers int, progress io.Writer, onComplete func(*imageio.Framebuffer) error) error {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	s := &scheduler{
		tiles:     buildTiles(fb.Width, fb.Height),
		startedAt: time.Now().Add(-time.Second),
	}
	s.lastPrint = s.startedAt
	s.numTilesStart = len(s.tiles)
	s.keepGoing.Store(true)

	var wg sync.WaitGroup
	var saveErr error
	var saveErrMu sync.Mutex

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerIndex int) {
			defer wg.Done()
			s.active.Add(1)

			rng := prng.New()
			rng.Seed(prng.HashWorkerSeed(workerIndex))
			state := &pathState{opts: opts, rng: rng}

			for s.keepGoing.Load() {
				tile, ok := s.popTile(progress)
				if !ok {
					break
				}
				renderTile(state, fb, tile)
			}

			if s.active.Add(-1) == 0 {
				s.mu.Lock()
				s.tiles = nil
				if progress != nil {
					s.printProgress(progress)
				}
				s.mu.Unlock()
				if onComplete != nil {
					if err := onComplete(fb); err != nil {
						saveErrMu.Lock()
						saveErr = err
						saveErrMu.Unlock()
					}
				}
			}
		}(w)
	}

	wg.Wait()
	return saveErr
}

// renderTile fills every pixel of tile into fb using state's worker-local
// RNG. Tiles are disjoint, so concurrent workers never write the same
// framebuffer slot.
func renderTile(state *pathState, fb *imageio.Framebuffer, tile Tile) {
	for j := tile.Y; j < tile.Y+tile.H; j++ {
		for i := tile.X; i < tile.X+tile.W; i++ {
			fb.Set(i, j, renderPixel(state, i, j))
		}
	}
}
