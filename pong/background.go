package pong

// Tile indexes the background tile set.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileNet
)

// Background is the singleton tile map drawn behind the sprites.
type Background struct {
	Tiles [MapHeight][MapWidth]Tile
}

// NewCourt lays out the court: solid walls along the top and bottom rows
// and a dashed net down the middle.
func NewCourt() Background {
	var bg Background
	for x := range MapWidth {
		bg.Tiles[0][x] = TileWall
		bg.Tiles[MapHeight-1][x] = TileWall
	}
	for y := 1; y < MapHeight-1; y++ {
		if y%2 == 1 {
			bg.Tiles[y][MapWidth/2] = TileNet
		}
	}
	return bg
}

// At returns the tile at tile coordinates x, y, or TileEmpty outside the map.
func (b *Background) At(x, y int) Tile {
	if x < 0 || y < 0 || x >= MapWidth || y >= MapHeight {
		return TileEmpty
	}
	return b.Tiles[y][x]
}
