//go:build !android

package desktop

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cloutchase/internal/game"
)

// Input turns glfw key and mouse state into game.Input.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func keyDown(window *glfw.Window, key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

// CursorFramebufferPos returns the cursor in framebuffer pixels. On HiDPI
// displays the window and framebuffer sizes differ.
func CursorFramebufferPos(window *glfw.Window, fbW, fbH int) (float64, float64, bool) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return 0, 0, false
	}
	return cx * float64(fbW) / float64(winW), cy * float64(fbH) / float64(winH), true
}

// Poll samples both players' controls for one frame. The snake pane and its
// camera are needed for pointer steering.
func (in *Input) Poll(window *glfw.Window, snap *game.Snapshot, snakeVP game.Viewport, fbW, fbH int) game.Input {
	var out game.Input

	out.TurnLeft = keyDown(window, glfw.KeyA)
	out.TurnRight = keyDown(window, glfw.KeyD)
	out.SpeedUp = keyDown(window, glfw.KeyW)
	out.SpeedDown = keyDown(window, glfw.KeyS)
	out.Boost = keyDown(window, glfw.KeySpace) ||
		window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press

	out.ChaserDirX, out.ChaserDirY = game.ChaserDir(
		keyDown(window, glfw.KeyLeft),
		keyDown(window, glfw.KeyRight),
		keyDown(window, glfw.KeyUp),
		keyDown(window, glfw.KeyDown),
	)

	out.Restart = in.JustPressed(window, glfw.KeyR)

	// Right button held over the snake pane steers toward the cursor.
	if window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		fx, fy, ok := CursorFramebufferPos(window, fbW, fbH)
		if ok && fx >= snakeVP.X && fx < snakeVP.X+snakeVP.W {
			target := snap.SnakeCam.ScreenToWorld(snakeVP, fx, fy)
			head := snap.Snake.Head()
			dx, dy := target.X-head.X, target.Y-head.Y
			if math.Hypot(dx, dy) > 1 {
				out.HasPointer = true
				out.PointerHeading = math.Atan2(dy, dx)
			}
		}
	}
	return out
}
