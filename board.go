package main

const (
	boardWidth  = 10
	boardHeight = 20
)

type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionBoundary
	CollisionBlock
)

type Board struct {
	Width  int
	Height int
	grid   [][]bool
}

func NewBoard(width, height int) *Board {
	grid := make([][]bool, height)
	for y := range grid {
		grid[y] = make([]bool, width)
	}
	return &Board{Width: width, Height: height, grid: grid}
}

func NewStandardBoard() *Board {
	return NewBoard(boardWidth, boardHeight)
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// IsOccupied is total: out-of-bounds coordinates report false.
func (b *Board) IsOccupied(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.grid[y][x]
}

// IsValidPosition checks the piece at a candidate (x, y) in its current
// rotation. The piece itself is never mutated.
func (b *Board) IsValidPosition(p *Piece, x, y int) bool {
	return b.validAt(p, x, y, p.Rotation)
}

func (b *Board) CanMove(p *Piece, dx, dy int) bool {
	return b.validAt(p, p.X+dx, p.Y+dy, p.Rotation)
}

// CanRotate tests the next rotation state in place. There is no kick or
// offset search; a colliding rotation is simply rejected.
func (b *Board) CanRotate(p *Piece) bool {
	return b.validAt(p, p.X, p.Y, p.Rotation+1)
}

func (b *Board) validAt(p *Piece, x, y, rotation int) bool {
	for _, block := range p.blocksAt(x, y, rotation) {
		if !b.inBounds(block.X, block.Y) {
			return false
		}
		if b.grid[block.Y][block.X] {
			return false
		}
	}
	return true
}

// CollisionAt classifies why a placement would be rejected, checking
// boundary before occupancy for each block in block order.
func (b *Board) CollisionAt(p *Piece, x, y int) CollisionKind {
	for _, block := range p.blocksAt(x, y, p.Rotation) {
		if !b.inBounds(block.X, block.Y) {
			return CollisionBoundary
		}
		if b.grid[block.Y][block.X] {
			return CollisionBlock
		}
	}
	return CollisionNone
}

// Place marks the piece's cells occupied at (x, y), skipping any block
// outside the grid.
func (b *Board) Place(p *Piece, x, y int) {
	for _, block := range p.blocksAt(x, y, p.Rotation) {
		if b.inBounds(block.X, block.Y) {
			b.grid[block.Y][block.X] = true
		}
	}
}

// ClearFullRows removes every fully occupied row, inserting fresh rows at
// the top, and returns how many were cleared. Scanning bottom-up and
// re-checking the same index after a clear handles non-contiguous full rows.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.Height - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		for pull := y; pull > 0; pull-- {
			copy(b.grid[pull], b.grid[pull-1])
		}
		for x := 0; x < b.Width; x++ {
			b.grid[0][x] = false
		}
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	if y < 0 || y >= b.Height {
		return false
	}
	for x := 0; x < b.Width; x++ {
		if !b.grid[y][x] {
			return false
		}
	}
	return true
}

// GridCopy returns an independent copy of the occupancy grid for rendering.
func (b *Board) GridCopy() [][]bool {
	grid := make([][]bool, b.Height)
	for y := range grid {
		grid[y] = make([]bool, b.Width)
		copy(grid[y], b.grid[y])
	}
	return grid
}
