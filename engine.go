package main

import (
	"math/rand"
	"time"
)

const (
	fallInterval      = 1.0
	moveDelay         = 0.1
	softDropThreshold = 0.3 * moveDelay
)

// KeyState is the per-frame held state of the four gameplay keys, sampled
// by the shell and handed to HandleInput once per frame.
type KeyState struct {
	Left  bool
	Right bool
	Down  bool
	Up    bool
}

// Snapshot is a read-only view of the game for the renderer. The grid is an
// independent copy and the pieces are values.
type Snapshot struct {
	Grid    [][]bool
	Current Piece
	Next    Piece
	Score   int
	Lines   int
	Over    bool
}

type Engine struct {
	board    *Board
	current  *Piece
	next     *Piece
	Score    int
	Lines    int
	Over     bool
	fallTime float64
	moveTime float64
	lastKeys KeyState
	rng      *rand.Rand
}

// NewEngine builds a fresh game. Restart is discarding the engine and
// calling this again; there is no in-place reset.
func NewEngine() *Engine {
	return newEngine(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newEngine(rng *rand.Rand) *Engine {
	e := &Engine{board: NewStandardBoard(), rng: rng}
	e.spawn()
	return e
}

// Update advances the clocks by dt seconds and applies gravity when the
// fall accumulator fills. The accumulator resets whether or not the piece
// actually moved.
func (e *Engine) Update(dt float64) {
	if e.Over {
		return
	}
	e.fallTime += dt
	e.moveTime += dt
	if e.fallTime >= fallInterval {
		e.tryMove(0, 1)
		e.fallTime = 0
	}
}

// HandleInput applies one frame of held-key input. Rotation fires only on
// the rising edge of up; horizontal moves are gated by the move accumulator,
// which resets on any attempt; soft drop repeats on a shorter threshold.
func (e *Engine) HandleInput(keys KeyState) {
	if e.Over {
		return
	}
	if keys.Up && !e.lastKeys.Up {
		e.tryRotate()
	}
	if e.moveTime >= moveDelay {
		if keys.Left {
			e.tryMove(-1, 0)
			e.moveTime = 0
		} else if keys.Right {
			e.tryMove(1, 0)
			e.moveTime = 0
		}
	}
	if keys.Down && e.moveTime >= softDropThreshold {
		e.tryMove(0, 1)
		e.moveTime = 0
	}
	e.lastKeys = keys
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:    e.board.GridCopy(),
		Current: *e.current,
		Next:    *e.next,
		Score:   e.Score,
		Lines:   e.Lines,
		Over:    e.Over,
	}
}

// tryMove applies the offset when the board permits it. A blocked downward
// step locks the piece; a blocked horizontal step is ignored.
func (e *Engine) tryMove(dx, dy int) bool {
	if e.board.CanMove(e.current, dx, dy) {
		e.current.Move(dx, dy)
		return true
	}
	if dy > 0 {
		e.lock()
	}
	return false
}

func (e *Engine) tryRotate() bool {
	if e.board.CanRotate(e.current) {
		e.current.Rotate()
		return true
	}
	return false
}

func (e *Engine) lock() {
	e.board.Place(e.current, e.current.X, e.current.Y)
	cleared := e.board.ClearFullRows()
	e.Lines += cleared
	e.Score += cleared * 100
	e.spawn()
}

// spawn promotes the preview piece to the top-center anchor and draws a new
// preview uniformly over the seven kinds. A blocked spawn ends the game
// without placing anything.
func (e *Engine) spawn() {
	if e.next != nil {
		e.current = e.next
	} else {
		e.current = e.randomPiece()
	}
	e.current.X = e.board.Width/2 - 2
	e.current.Y = 0
	e.next = e.randomPiece()
	if !e.board.IsValidPosition(e.current, e.current.X, e.current.Y) {
		e.Over = true
	}
}

func (e *Engine) randomPiece() *Piece {
	return NewPiece(PieceKind(e.rng.Intn(int(numKinds))))
}
