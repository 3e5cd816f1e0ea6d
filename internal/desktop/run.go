//go:build !android

// Package desktop is the OpenGL split-screen front end: the snake plays in
// the left pane, the chaser in the right.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cloutchase/internal/game"
)

const titleInterval = 80 * time.Millisecond

// Run opens the window and plays until it is closed.
func Run(cfg game.Config, log *slog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	session := game.NewSession(cfg)
	session.Log = log

	audio, err := InitAudio()
	if err != nil {
		log.Warn("audio init failed, continuing without sound", "err", err)
	} else {
		audio.Attach(session.Events)
		go func() {
			time.Sleep(100 * time.Millisecond) // let the audio context come up
			audio.StartAmbient(cfg.Seed)
		}()
		defer audio.Close()
	}

	sc := newScene(cfg.Seed, session.Config().WorldRadius)
	input := NewInput()
	var clock game.FrameClock
	var lastTitle time.Time
	snap := session.Snapshot()

	for !window.ShouldClose() {
		dt := clock.Tick(time.Now())

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		snakeVP, chaserVP := splitViewports(fbW, fbH)

		session.Step(input.Poll(window, &snap, snakeVP, fbW, fbH), dt)
		snap = session.Snapshot()

		rend.BeginFrame(fbW, fbH)
		sc.drawView(rend, &snap, game.RoleSnake, snakeVP, fbH)
		sc.drawView(rend, &snap, game.RoleChaser, chaserVP, fbH)
		rend.DrawDivider(int(snakeVP.W), fbH, dividerRGB)

		if now := time.Now(); now.Sub(lastTitle) >= titleInterval {
			lastTitle = now
			window.SetTitle(hudTitle(&snap))
		}

		window.SwapBuffers()
	}
	log.Info("window closed", "score", snap.Score)
	return nil
}

// hudTitle is the status line shown in the window title.
func hudTitle(snap *game.Snapshot) string {
	s := fmt.Sprintf("%s | score %d | length %d", WindowTitle, snap.Score, snap.Length)
	switch snap.Outcome {
	case game.SnakeWins:
		s += " | SNAKE WINS - press R to restart"
	case game.ChaserWins:
		s += " | PACMAN WINS - press R to restart"
	}
	return s
}
