// Package term is the terminal front end: the same split-screen match drawn
// with tcell, one character cell per few world units.
package term

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"cloutchase/internal/game"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Run takes over the terminal and plays until Esc or Ctrl-C.
func Run(cfg game.Config, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	session := game.NewSession(cfg)
	session.Log = log

	sound := newSoundPlayer()
	if err := sound.Initialize(); err != nil {
		log.Warn("audio init failed, continuing without sound", "err", err)
	} else {
		sound.Attach(session.Events)
		defer sound.Close()
	}

	w, h := screen.Size()
	cv := newCanvas(w, h)
	var keys keyState
	var clock game.FrameClock
	wasBoosting := false

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil { // screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !keys.handle(ev, time.Now()) {
					log.Info("quit", "score", session.Score)
					return nil
				}
			case *tcell.EventResize:
				w, h = screen.Size()
				cv.resize(w, h)
				screen.Sync()
			}

		case now := <-ticker.C:
			in := keys.input(now)
			session.Step(in, clock.Tick(now))
			if in.Boost && !wasBoosting && session.Outcome == game.InProgress {
				sound.Blip(660, 40*time.Millisecond, 0.2)
			}
			wasBoosting = in.Boost

			snap := session.Snapshot()
			drawFrame(cv, &snap)
			cv.blit(screen)
			screen.Show()
		}
	}
}
