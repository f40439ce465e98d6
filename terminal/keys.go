package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/hitnbreak/breakout"
)

type action int

const (
	actionLeft action = iota
	actionRight
	actionLaunch
)

// heldKeys turns key events into held keys. Terminals only report presses
// and auto-repeat, so a key stays down until hold has passed since its last
// event.
type heldKeys struct {
	hold     time.Duration
	lastSeen map[action]time.Time
	quit     bool
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{
		hold:     hold,
		lastSeen: make(map[action]time.Time, 3),
	}
}

func (k *heldKeys) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyLeft:
		k.lastSeen[actionLeft] = now
	case tcell.KeyRight:
		k.lastSeen[actionRight] = now
	case tcell.KeyEnter:
		k.lastSeen[actionLaunch] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.lastSeen[actionLeft] = now
		case 'd', 'D':
			k.lastSeen[actionRight] = now
		case 'q', 'Q':
			k.quit = true
		}
	}
}

func (k *heldKeys) held(a action, now time.Time) bool {
	seen, ok := k.lastSeen[a]
	return ok && now.Sub(seen) < k.hold
}

func (k *heldKeys) input(now time.Time) breakout.Input {
	return breakout.Input{
		Left:   k.held(actionLeft, now),
		Right:  k.held(actionRight, now),
		Launch: k.held(actionLaunch, now),
		Quit:   k.quit,
	}
}
