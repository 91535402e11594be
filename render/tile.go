package render

// Tile is a rectangular, disjoint region of the framebuffer a single
// worker renders to completion before claiming another.
type Tile struct {
	X, Y, W, H int
}

// buildTiles partitions a width x height framebuffer into TileSize
// squares (the last row/column of tiles may be smaller), then reverses
// the list so that popping from the back starts work at the top-left of
// the image first (the original reverses for the opposite reason: its
// list is built top-to-bottom and it wants to start at the bottom; here
// the list is built the same way and reversed the same way, preserving
// pop-from-back as "first produced, first rendered").
func buildTiles(width, height int) []Tile {
	var tiles []Tile
	for y := 0; y < height; y += TileSize {
		for x := 0; x < width; x += TileSize {
			w := TileSize
			if x+w > width {
				w = width - x
			}
			h := TileSize
			if y+h > height {
				h = height - y
			}
			tiles = append(tiles, Tile{X: x, Y: y, W: w, H: h})
		}
	}
	for i, j := 0, len(tiles)-1; i < j; i, j = i+1, j-1 {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	return tiles
}
