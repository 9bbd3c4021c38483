package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return newEngine(rand.New(rand.NewSource(1)))
}

func TestSpawnAnchor(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, 3, e.current.X)
	assert.Equal(t, 0, e.current.Y)
	assert.Equal(t, 0, e.current.Rotation)
	assert.NotNil(t, e.next)
	assert.False(t, e.Over)
}

func TestGravityStepsOnInterval(t *testing.T) {
	e := newTestEngine()
	y := e.current.Y

	e.Update(0.5)
	assert.Equal(t, y, e.current.Y)

	e.Update(0.5)
	assert.Equal(t, y+1, e.current.Y)
	assert.Equal(t, 0.0, e.fallTime)

	// The accumulator resets even when nothing moved; the next step needs a
	// full interval again.
	e.Update(0.9)
	assert.Equal(t, y+1, e.current.Y)
}

func TestGravityLocksPieceAtBottom(t *testing.T) {
	e := newTestEngine()
	e.current = NewPiece(KindO)
	e.current.X, e.current.Y = 4, 18

	e.Update(fallInterval)

	for _, p := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.True(t, e.board.IsOccupied(p.X, p.Y), "(%d,%d)", p.X, p.Y)
	}
	// A fresh piece spawned at the anchor.
	assert.Equal(t, 3, e.current.X)
	assert.Equal(t, 0, e.current.Y)
	assert.Equal(t, 0, e.Score)
	assert.Equal(t, 0, e.Lines)
}

func TestScoringAcrossPlacements(t *testing.T) {
	e := newTestEngine()

	// First placement completes two rows at once.
	fillRow(e.board, 18, 4, 5)
	fillRow(e.board, 19, 4, 5)
	e.current = NewPiece(KindO)
	e.current.X, e.current.Y = 4, 18
	e.lock()
	assert.Equal(t, 200, e.Score)
	assert.Equal(t, 2, e.Lines)

	// A later placement completes a single row.
	fillRow(e.board, 19, 4, 5)
	e.current = NewPiece(KindO)
	e.current.X, e.current.Y = 4, 18
	e.lock()
	assert.Equal(t, 300, e.Score)
	assert.Equal(t, 3, e.Lines)
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	e := newTestEngine()
	for y := 0; y < 4; y++ {
		fillRow(e.board, y)
	}

	e.spawn()
	require.True(t, e.Over)

	// Once over, update and input are no-ops.
	before := e.Snapshot()
	e.Update(10)
	e.HandleInput(KeyState{Left: true, Down: true, Up: true})
	after := e.Snapshot()
	assert.Equal(t, before.Grid, after.Grid)
	assert.Equal(t, before.Current, after.Current)
	assert.Equal(t, before.Score, after.Score)
}

func TestStackingUntilTopOut(t *testing.T) {
	e := newTestEngine()
	// Drive gravity only; eventually a spawn collides and the game ends.
	for i := 0; i < 10000 && !e.Over; i++ {
		e.Update(fallInterval)
	}
	require.True(t, e.Over)
}

func TestRotationFiresOnRisingEdgeOnly(t *testing.T) {
	e := newTestEngine()
	e.current = NewPiece(KindT)
	e.current.X, e.current.Y = 4, 5

	e.HandleInput(KeyState{Up: true})
	assert.Equal(t, 1, e.current.Rotation)

	// Held across frames: no further rotation.
	e.HandleInput(KeyState{Up: true})
	e.HandleInput(KeyState{Up: true})
	assert.Equal(t, 1, e.current.Rotation)

	// Release and press again.
	e.HandleInput(KeyState{})
	e.HandleInput(KeyState{Up: true})
	assert.Equal(t, 2, e.current.Rotation)
}

func TestHorizontalMoveRateLimited(t *testing.T) {
	e := newTestEngine()
	e.current = NewPiece(KindT)
	e.current.X, e.current.Y = 4, 5

	e.moveTime = moveDelay
	e.HandleInput(KeyState{Left: true})
	assert.Equal(t, 3, e.current.X)
	assert.Equal(t, 0.0, e.moveTime)

	// Too soon for another step.
	e.HandleInput(KeyState{Left: true})
	assert.Equal(t, 3, e.current.X)
}

func TestLeftWinsWhenBothHeld(t *testing.T) {
	e := newTestEngine()
	e.current = NewPiece(KindT)
	e.current.X, e.current.Y = 4, 5

	e.moveTime = moveDelay
	e.HandleInput(KeyState{Left: true, Right: true})
	assert.Equal(t, 3, e.current.X)
}

func TestBlockedHorizontalMoveNeverLocks(t *testing.T) {
	e := newTestEngine()
	e.current = NewPiece(KindJ)
	e.current.X, e.current.Y = 0, 5

	e.moveTime = moveDelay
	e.HandleInput(KeyState{Left: true})
	assert.Equal(t, 0, e.current.X)
	assert.Equal(t, 5, e.current.Y)
	// The accumulator still resets on the attempt.
	assert.Equal(t, 0.0, e.moveTime)
	for y := 0; y < e.board.Height; y++ {
		for x := 0; x < e.board.Width; x++ {
			assert.False(t, e.board.IsOccupied(x, y))
		}
	}
}

func TestSoftDropUsesShorterThreshold(t *testing.T) {
	e := newTestEngine()
	e.current = NewPiece(KindT)
	e.current.X, e.current.Y = 4, 5

	e.moveTime = softDropThreshold
	e.HandleInput(KeyState{Down: true})
	assert.Equal(t, 6, e.current.Y)
	assert.Equal(t, 0.0, e.moveTime)

	e.HandleInput(KeyState{Down: true})
	assert.Equal(t, 6, e.current.Y)
}

func TestSoftDropAtFloorLocks(t *testing.T) {
	e := newTestEngine()
	e.current = NewPiece(KindO)
	e.current.X, e.current.Y = 4, 18

	e.moveTime = softDropThreshold
	e.HandleInput(KeyState{Down: true})
	assert.True(t, e.board.IsOccupied(4, 19))
	assert.Equal(t, 0, e.current.Y)
}

func TestSnapshotGridIsImmutableCopy(t *testing.T) {
	e := newTestEngine()
	snap := e.Snapshot()
	snap.Grid[10][4] = true
	assert.False(t, e.board.IsOccupied(4, 10))
}

func TestRestartIsFreshConstruction(t *testing.T) {
	e := newTestEngine()
	for y := 0; y < 4; y++ {
		fillRow(e.board, y)
	}
	e.spawn()
	require.True(t, e.Over)

	e = newTestEngine()
	assert.False(t, e.Over)
	assert.Equal(t, 0, e.Score)
	for y := 0; y < e.board.Height; y++ {
		for x := 0; x < e.board.Width; x++ {
			assert.False(t, e.board.IsOccupied(x, y))
		}
	}
}
