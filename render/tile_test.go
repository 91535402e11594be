package render

import "testing"

func TestBuildTilesCoversWholeFramebufferExactlyOnce(t *testing.T) {
	width, height := 70, 50
	tiles := buildTiles(width, height)

	covered := make([]bool, width*height)
	for _, tile := range tiles {
		if tile.X+tile.W > width || tile.Y+tile.H > height {
			t.Fatalf("tile %+v exceeds framebuffer %dx%d", tile, width, height)
		}
		for y := tile.Y; y < tile.Y+tile.H; y++ {
			for x := tile.X; x < tile.X+tile.W; x++ {
				idx := y*width + x
				if covered[idx] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[idx] = true
			}
		}
	}
	for i, c := range covered {
		if !c {
			t.Fatalf("pixel index %d never covered by any tile", i)
		}
	}
}

func TestBuildTilesExactMultipleHasUniformTiles(t *testing.T) {
	tiles := buildTiles(TileSize*2, TileSize*3)
	if len(tiles) != 6 {
		t.Fatalf("got %d tiles, want 6", len(tiles))
	}
	for _, tile := range tiles {
		if tile.W != TileSize || tile.H != TileSize {
			t.Errorf("tile %+v not full-size", tile)
		}
	}
}
