// Package screens provides the demo screens layered on the screen-stack
// manager: a background, menus, a gameplay view, and popup dialogs.
package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/screen"
	"github.com/younwookim/screenstack/internal/application/system"
)

// MenuEntry is a single selectable line in a menu screen.
type MenuEntry struct {
	Text     string
	OnSelect func()
}

// MenuScreen is a keyboard-driven list menu. Popup menus (pause) darken the
// screens beneath them; full menus slide in from the side while
// transitioning.
type MenuScreen struct {
	screen.Base
	title    string
	entries  []*MenuEntry
	selected int

	// OnCancel runs when the menu is dismissed with the cancel key.
	OnCancel func()
}

// NewMenuScreen creates an empty menu with the given title.
func NewMenuScreen(title string) *MenuScreen {
	return &MenuScreen{
		Base:  screen.NewBase(0.5, 0.5),
		title: title,
	}
}

// AddEntry appends a selectable entry to the menu.
func (s *MenuScreen) AddEntry(text string, onSelect func()) *MenuEntry {
	entry := &MenuEntry{Text: text, OnSelect: onSelect}
	s.entries = append(s.entries, entry)
	return entry
}

// Entries returns the menu's entries in display order.
func (s *MenuScreen) Entries() []*MenuEntry { return s.entries }

// Selected returns the index of the highlighted entry.
func (s *MenuScreen) Selected() int { return s.selected }

// Update advances the menu's transition.
func (s *MenuScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	s.StepTransition(s, dt, coveredByOtherScreen)
}

// HandleInput moves the selection and fires the selected entry.
func (s *MenuScreen) HandleInput(dt float64, in *system.InputState) {
	if len(s.entries) > 0 {
		if in.MenuUp {
			s.selected--
			if s.selected < 0 {
				s.selected = len(s.entries) - 1
			}
		}
		if in.MenuDown {
			s.selected++
			if s.selected >= len(s.entries) {
				s.selected = 0
			}
		}
		if in.MenuSelect {
			if entry := s.entries[s.selected]; entry.OnSelect != nil {
				entry.OnSelect()
			}
		}
	}

	if in.MenuCancel && s.OnCancel != nil {
		s.OnCancel()
	}
}

// Draw renders the title and entries, sliding with the transition. A popup
// menu darkens everything beneath it first.
func (s *MenuScreen) Draw(dt float64, target *ebiten.Image) {
	if s.IsPopup() {
		if m := s.Manager(); m != nil {
			m.FadeToBlack(target, s.Alpha()*0.5)
		}
	}

	// Ease the slide with the square of the transition position.
	pos := s.TransitionPosition()
	offset := int(pos * pos * 96)

	ebitenutil.DebugPrintAt(target, s.title, 32-offset, 32)
	for i, entry := range s.entries {
		marker := "  "
		if i == s.selected {
			marker = "> "
		}
		ebitenutil.DebugPrintAt(target, marker+entry.Text, 40-offset, 56+i*14)
	}
}
