package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"cloutchase/internal/game"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held until holdTimeout passes without another event.
const holdTimeout = 150 * time.Millisecond

type control int

const (
	ctlTurnLeft control = iota
	ctlTurnRight
	ctlSpeedUp
	ctlSpeedDown
	ctlBoost
	ctlChaserLeft
	ctlChaserRight
	ctlChaserUp
	ctlChaserDown
	numControls
)

// keyState tracks held controls and a pending restart.
type keyState struct {
	lastSeen [numControls]time.Time
	restart  bool
}

func (k *keyState) press(c control, now time.Time) {
	k.lastSeen[c] = now
}

func (k *keyState) held(c control, now time.Time) bool {
	t := k.lastSeen[c]
	return !t.IsZero() && now.Sub(t) <= holdTimeout
}

// controlFor maps a key event to a control. ok is false for keys that are
// not movement controls.
func controlFor(ev *tcell.EventKey) (control, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ctlChaserLeft, true
	case tcell.KeyRight:
		return ctlChaserRight, true
	case tcell.KeyUp:
		return ctlChaserUp, true
	case tcell.KeyDown:
		return ctlChaserDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return ctlTurnLeft, true
		case 'd', 'D':
			return ctlTurnRight, true
		case 'w', 'W':
			return ctlSpeedUp, true
		case 's', 'S':
			return ctlSpeedDown, true
		case ' ':
			return ctlBoost, true
		}
	}
	return 0, false
}

// handle records a key event. It reports false when the player asked to quit.
func (k *keyState) handle(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'r' || r == 'R' {
			k.restart = true
			return true
		}
	}
	if c, ok := controlFor(ev); ok {
		k.press(c, now)
	}
	return true
}

// input builds the frame's game.Input and consumes a pending restart.
func (k *keyState) input(now time.Time) game.Input {
	in := game.Input{
		TurnLeft:  k.held(ctlTurnLeft, now),
		TurnRight: k.held(ctlTurnRight, now),
		SpeedUp:   k.held(ctlSpeedUp, now),
		SpeedDown: k.held(ctlSpeedDown, now),
		Boost:     k.held(ctlBoost, now),
		Restart:   k.restart,
	}
	in.ChaserDirX, in.ChaserDirY = game.ChaserDir(
		k.held(ctlChaserLeft, now),
		k.held(ctlChaserRight, now),
		k.held(ctlChaserUp, now),
		k.held(ctlChaserDown, now),
	)
	k.restart = false
	return in
}
