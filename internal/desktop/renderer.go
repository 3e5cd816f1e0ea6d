//go:build !android

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"cloutchase/internal/game"
)

// MaxSprites caps a single sprite upload.
const MaxSprites = 16384

// spriteFloats is the vertex layout: x, y, size, r, g, b, a, rotation.
const spriteFloats = 8

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// spriteProgram is a linked point-sprite program and its camera uniforms.
type spriteProgram struct {
	id          uint32
	uCamera     int32
	uZoom       int32
	uResolution int32
}

func newSpriteProgram(fragSrc string) (spriteProgram, error) {
	id, err := linkProgram(spriteVertSrc, fragSrc)
	if err != nil {
		return spriteProgram{}, err
	}
	return spriteProgram{
		id:          id,
		uCamera:     gl.GetUniformLocation(id, gl.Str("uCamera\x00")),
		uZoom:       gl.GetUniformLocation(id, gl.Str("uZoom\x00")),
		uResolution: gl.GetUniformLocation(id, gl.Str("uResolution\x00")),
	}, nil
}

type Renderer struct {
	disc   spriteProgram
	glow   spriteProgram
	chaser spriteProgram
	arrow  spriteProgram

	chaserUMouth int32
	chaserUEye   int32

	spriteVAO uint32
	spriteVBO uint32

	// Overlay program draws a unit quad over the current viewport.
	overlayProg      uint32
	overlayVAO       uint32
	overlayVBO       uint32
	overlayUAlpha    int32
	overlayUVignette int32
	overlayUTint     int32

	// Current viewport size in pixels.
	vpW, vpH float32
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	var err error
	if r.disc, err = newSpriteProgram(discFragSrc); err != nil {
		return nil, fmt.Errorf("disc program: %w", err)
	}
	if r.glow, err = newSpriteProgram(glowFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("glow program: %w", err)
	}
	if r.chaser, err = newSpriteProgram(chaserFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("chaser program: %w", err)
	}
	if r.arrow, err = newSpriteProgram(arrowFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("arrow program: %w", err)
	}
	if r.overlayProg, err = linkProgram(overlayVertSrc, overlayFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	r.chaserUMouth = gl.GetUniformLocation(r.chaser.id, gl.Str("uMouth\x00"))
	r.chaserUEye = gl.GetUniformLocation(r.chaser.id, gl.Str("uEye\x00"))
	r.overlayUAlpha = gl.GetUniformLocation(r.overlayProg, gl.Str("uAlpha\x00"))
	r.overlayUVignette = gl.GetUniformLocation(r.overlayProg, gl.Str("uVignette\x00"))
	r.overlayUTint = gl.GetUniformLocation(r.overlayProg, gl.Str("uTint\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	// Overlay VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var oVAO, oVBO uint32
	gl.GenVertexArrays(1, &oVAO)
	gl.GenBuffers(1, &oVBO)
	gl.BindVertexArray(oVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, oVBO)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.overlayVAO = oVAO
	r.overlayVBO = oVBO

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.overlayVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.overlayVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.disc.id, r.glow.id, r.chaser.id, r.arrow.id, r.overlayProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears the whole framebuffer.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := game.Palette.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// BeginViewport restricts drawing to one split-screen pane. vp is in
// framebuffer pixels with a top-left origin.
func (r *Renderer) BeginViewport(vp game.Viewport, fbH int) {
	x := int32(vp.X)
	y := int32(float64(fbH) - vp.Y - vp.H)
	w, h := int32(vp.W), int32(vp.H)
	gl.Viewport(x, y, w, h)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, y, w, h)
	r.vpW, r.vpH = float32(vp.W), float32(vp.H)
}

func (r *Renderer) EndViewport() {
	gl.Disable(gl.SCISSOR_TEST)
}

func (r *Renderer) useSprites(p spriteProgram, cam game.Camera) {
	gl.UseProgram(p.id)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(p.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(p.uZoom, float32(cam.Zoom))
	gl.Uniform2f(p.uResolution, r.vpW, r.vpH)
}

func (r *Renderer) upload(buf []float32) int32 {
	count := len(buf) / spriteFloats
	if count > MaxSprites {
		count = MaxSprites
	}
	gl.BufferData(gl.ARRAY_BUFFER, count*spriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	return int32(count)
}

// DrawSprites renders round point sprites with standard alpha blending.
// buf format: [x, y, size, r, g, b, a, rotation] * N.
func (r *Renderer) DrawSprites(buf []float32, cam game.Camera) {
	if len(buf) < spriteFloats {
		return
	}
	r.useSprites(r.disc, cam)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.POINTS, 0, r.upload(buf))
	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
func (r *Renderer) DrawGlowSprites(buf []float32, cam game.Camera) {
	if len(buf) < spriteFloats {
		return
	}
	r.useSprites(r.glow, cam)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DrawArrays(gl.POINTS, 0, r.upload(buf))
	gl.Disable(gl.BLEND)
}

// DrawChaser renders chaser sprites; rotation carries the heading.
func (r *Renderer) DrawChaser(buf []float32, cam game.Camera, mouth float64) {
	if len(buf) < spriteFloats {
		return
	}
	r.useSprites(r.chaser, cam)
	eye := game.Palette.ChaserEye
	gl.Uniform1f(r.chaserUMouth, float32(mouth))
	gl.Uniform3f(r.chaserUEye, float32(eye.R)/255, float32(eye.G)/255, float32(eye.B)/255)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.POINTS, 0, r.upload(buf))
	gl.Disable(gl.BLEND)
}

// DrawArrows renders outlined direction arrows; rotation is the pointing angle.
func (r *Renderer) DrawArrows(buf []float32, cam game.Camera) {
	if len(buf) < spriteFloats {
		return
	}
	r.useSprites(r.arrow, cam)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.POINTS, 0, r.upload(buf))
	gl.Disable(gl.BLEND)
}

// DrawOverlay washes the current viewport with tint.
func (r *Renderer) DrawOverlay(alpha, vignette float64, tint game.RGB) {
	if alpha <= 0 && vignette <= 0 {
		return
	}
	gl.UseProgram(r.overlayProg)
	gl.BindVertexArray(r.overlayVAO)
	gl.Uniform1f(r.overlayUAlpha, float32(alpha))
	gl.Uniform1f(r.overlayUVignette, float32(vignette))
	gl.Uniform3f(r.overlayUTint, float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)
}

// DrawDivider paints the vertical split line between the two panes.
func (r *Renderer) DrawDivider(x, fbH int, c game.RGB) {
	gl.Viewport(0, 0, int32(x*2), int32(fbH))
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x-1), 0, 2, int32(fbH))
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)
}
