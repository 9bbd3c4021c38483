package main

import "fmt"

type PieceKind int

const (
	KindI PieceKind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	numKinds
)

var kindNames = [numKinds]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k PieceKind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
	return kindNames[k]
}

type Point struct {
	X int
	Y int
}

type shape [][]bool

// Rotation states per kind, in cycle order. O has a single state, I/S/Z
// have two, T/J/L have four. Any rune other than '.' marks a filled cell.
var shapeText = [numKinds][][]string{
	{ // I
		{"....", "IIII", "....", "...."},
		{"..I.", "..I.", "..I.", "..I."},
	},
	{ // O
		{"OO", "OO"},
	},
	{ // T
		{".T.", "TTT", "..."},
		{".T.", ".TT", ".T."},
		{"...", "TTT", ".T."},
		{".T.", "TT.", ".T."},
	},
	{ // S
		{".SS", "SS.", "..."},
		{".S.", ".SS", "..S"},
	},
	{ // Z
		{"ZZ.", ".ZZ", "..."},
		{"..Z", ".ZZ", ".Z."},
	},
	{ // J
		{"J..", "JJJ", "..."},
		{".JJ", ".J.", ".J."},
		{"...", "JJJ", "..J"},
		{".J.", ".J.", "JJ."},
	},
	{ // L
		{"..L", "LLL", "..."},
		{".L.", ".L.", ".LL"},
		{"...", "LLL", "L.."},
		{"LL.", ".L.", ".L."},
	},
}

// pieceShapes holds the catalog as boolean bitmaps, parsed once at init so
// lookups never touch the text form.
var pieceShapes [numKinds][]shape

func init() {
	for kind, states := range shapeText {
		parsed := make([]shape, len(states))
		for i, rows := range states {
			grid := make(shape, len(rows))
			for y, row := range rows {
				grid[y] = make([]bool, len(row))
				for x, c := range row {
					grid[y][x] = c != '.' && c != ' '
				}
			}
			parsed[i] = grid
		}
		pieceShapes[kind] = parsed
	}
}

type Piece struct {
	Kind     PieceKind
	Rotation int
	X        int
	Y        int
}

// NewPiece panics on a kind outside the catalog; there is no recoverable
// path for a piece of unknown shape.
func NewPiece(kind PieceKind) *Piece {
	if kind < 0 || kind >= numKinds {
		panic(fmt.Sprintf("blocktui: invalid piece kind %d", int(kind)))
	}
	return &Piece{Kind: kind}
}

// States reports how many rotation states the piece cycles through.
func (p *Piece) States() int {
	return len(pieceShapes[p.Kind])
}

func (p *Piece) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

func (p *Piece) Rotate() {
	p.Rotation = (p.Rotation + 1) % p.States()
}

// Blocks returns the absolute board coordinates of every filled cell.
func (p *Piece) Blocks() []Point {
	return p.blocksAt(p.X, p.Y, p.Rotation)
}

// blocksAt evaluates a candidate placement without touching the piece's
// stored position or rotation, so callers never need restore logic.
func (p *Piece) blocksAt(x, y, rotation int) []Point {
	states := pieceShapes[p.Kind]
	grid := states[rotation%len(states)]
	blocks := make([]Point, 0, 4)
	for dy, row := range grid {
		for dx, filled := range row {
			if filled {
				blocks = append(blocks, Point{X: x + dx, Y: y + dy})
			}
		}
	}
	return blocks
}
