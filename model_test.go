package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyTrackerHeldWithinWindow(t *testing.T) {
	now := time.Now()
	var tracker keyTracker

	assert.Equal(t, KeyState{}, tracker.held(now))

	tracker.left = now
	tracker.up = now.Add(-keyHoldWindow / 2)
	keys := tracker.held(now)
	assert.True(t, keys.Left)
	assert.True(t, keys.Up)
	assert.False(t, keys.Right)
	assert.False(t, keys.Down)
}

func TestKeyTrackerAgesOut(t *testing.T) {
	now := time.Now()
	tracker := keyTracker{down: now.Add(-keyHoldWindow)}
	assert.False(t, tracker.held(now).Down)
}

func TestThemeIndexByName(t *testing.T) {
	assert.Equal(t, 0, themeIndexByName(themes[0].Name))
	assert.Equal(t, -1, themeIndexByName("not a theme"))
}

func TestClampScale(t *testing.T) {
	assert.Equal(t, 1, clampScale(0))
	assert.Equal(t, 2, clampScale(2))
	assert.Equal(t, 3, clampScale(7))
}
