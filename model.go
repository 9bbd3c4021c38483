package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenThemes
	screenConfig
)

type frameMsg time.Time

const frameInterval = time.Second / 60

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// keyTracker turns terminal key events into per-frame held state. Terminals
// report no key-up, so a direction counts as held until its last event ages
// past the hold window (key auto-repeat keeps refreshing it).
const keyHoldWindow = 200 * time.Millisecond

type keyTracker struct {
	left  time.Time
	right time.Time
	down  time.Time
	up    time.Time
}

func (t *keyTracker) held(now time.Time) KeyState {
	return KeyState{
		Left:  !t.left.IsZero() && now.Sub(t.left) < keyHoldWindow,
		Right: !t.right.IsZero() && now.Sub(t.right) < keyHoldWindow,
		Down:  !t.down.IsZero() && now.Sub(t.down) < keyHoldWindow,
		Up:    !t.up.IsZero() && now.Sub(t.up) < keyHoldWindow,
	}
}

type Model struct {
	screen      Screen
	width       int
	height      int
	menuIndex   int
	themeIndex  int
	configIndex int
	config      Config
	engine      *Engine
	keys        keyTracker
	paused      bool
	wasOver     bool
	lastFrame   time.Time
}

func NewModel() Model {
	config, _ := loadConfig()
	index := themeIndexByName(config.Theme)
	if index < 0 {
		index = 0
		config.Theme = themes[index].Name
	}
	return Model{
		screen:     screenMenu,
		config:     config,
		themeIndex: index,
		engine:     NewEngine(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		if m.screen != screenGame {
			return m, nil
		}
		now := time.Time(msg)
		dt := now.Sub(m.lastFrame).Seconds()
		m.lastFrame = now
		if !m.paused {
			// Gravity first, then player input, every frame.
			m.engine.Update(dt)
			m.engine.HandleInput(m.keys.held(now))
		}
		if m.engine.Over && !m.wasOver {
			m.wasOver = true
			DebugLogf("game over score=%d lines=%d", m.engine.Score, m.engine.Lines)
		}
		return m, frameCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+=", "ctrl++":
			m.adjustScale(1)
			return m, nil
		case "ctrl+-", "ctrl+_":
			m.adjustScale(-1)
			return m, nil
		}
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenThemes:
			return m, m.updateThemes(msg)
		case screenConfig:
			return m, m.updateConfig(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenThemes:
		return viewThemes(m)
	case screenConfig:
		return viewConfig(m)
	default:
		return ""
	}
}

var menuItems = []string{
	"Start Game",
	"Themes",
	"Config",
	"Quit",
}

var configItems = []string{
	"Game Scale",
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		switch m.menuIndex {
		case 0:
			m.startGame()
			return frameCmd()
		case 1:
			m.screen = screenThemes
		case 2:
			m.screen = screenConfig
		case 3:
			return tea.Quit
		}
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

// startGame always builds a fresh engine; a finished game is never reset in
// place.
func (m *Model) startGame() {
	m.engine = NewEngine()
	m.keys = keyTracker{}
	m.paused = false
	m.wasOver = false
	m.lastFrame = time.Now()
	m.screen = screenGame
	DebugLogf("game start")
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	now := time.Now()
	switch msg.String() {
	case "left", "h":
		m.keys.left = now
	case "right", "l":
		m.keys.right = now
	case "down", "j":
		m.keys.down = now
	case "up", "x":
		m.keys.up = now
	case "r":
		if m.engine.Over {
			m.startGame()
		}
	case "p":
		if !m.engine.Over {
			m.paused = !m.paused
		}
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateThemes(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
		}
	case "enter":
		m.config.Theme = themes[m.themeIndex].Name
		if err := saveConfig(m.config); err != nil {
			DebugLogf("config save error: %v", err)
		}
		m.screen = screenMenu
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
		}
	case "enter", "right", "l":
		if m.configIndex == 0 {
			m.adjustScale(1)
		}
	case "left", "h":
		if m.configIndex == 0 {
			m.adjustScale(-1)
		}
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) adjustScale(delta int) {
	newScale := clampScale(m.config.Scale + delta)
	if newScale == m.config.Scale {
		return
	}
	m.config.Scale = newScale
	if err := saveConfig(m.config); err != nil {
		DebugLogf("config save error: %v", err)
	}
}
