// Package ui renders replay sessions on a terminal using tcell.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/playback"
)

// Viewer owns the terminal screen across games.
type Viewer struct {
	screen tcell.Screen
	cfg    *config.Config
	events chan tcell.Event
}

// NewViewer initialises the terminal.
func NewViewer(cfg *config.Config) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	v := &Viewer{
		screen: screen,
		cfg:    cfg,
		events: make(chan tcell.Event, 8),
	}
	go v.pollEvents()
	return v, nil
}

// Close releases the terminal.
func (v *Viewer) Close() {
	v.screen.Fini()
}

// pollEvents feeds terminal events into the viewer's channel until the
// screen is finalised.
func (v *Viewer) pollEvents() {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			close(v.events)
			return
		}
		v.events <- ev
	}
}

// Play runs one session to the end: automatic advance on the move
// delay, space to pause, arrow keys to seek while paused, f to flip,
// q or ESC to quit. It returns true when the user asked to quit the
// whole program.
func (v *Viewer) Play(session *playback.Session) bool {
	v.draw(session)

	ticker := time.NewTicker(v.cfg.MoveDelay)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-v.events:
			if !ok {
				return true
			}
			if quit := v.handleEvent(session, ev); quit {
				return true
			}
			v.draw(session)

		case <-ticker.C:
			if session.Paused() {
				continue
			}
			if session.Done() {
				return v.holdFinalPosition(session)
			}
			if _, err := session.Advance(); err != nil {
				v.cfg.Logf(0, "replay stopped: %v", err)
			}
			v.draw(session)
		}
	}
}

// holdFinalPosition keeps the finished game on screen for the end
// pause, still honouring review keys.
func (v *Viewer) holdFinalPosition(session *playback.Session) bool {
	deadline := time.NewTimer(v.cfg.EndPause)
	defer deadline.Stop()

	for {
		select {
		case ev, ok := <-v.events:
			if !ok {
				return true
			}
			if quit := v.handleEvent(session, ev); quit {
				return true
			}
			v.draw(session)

		case <-deadline.C:
			return false
		}
	}
}

// handleEvent applies one terminal event, returning true on quit.
func (v *Viewer) handleEvent(session *playback.Session, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Rune() == 'q' || ev.Rune() == 'Q':
			return true
		case ev.Rune() == ' ':
			session.TogglePause()
		case ev.Rune() == 'f' || ev.Rune() == 'F':
			session.Flip()
		case ev.Key() == tcell.KeyLeft && (session.Paused() || session.Done()):
			session.StepBack()
		case ev.Key() == tcell.KeyRight && (session.Paused() || session.Done()):
			session.StepForward()
		}
	}
	return false
}
