// Package platform wraps the windowing, input, and audio-device
// capabilities spec §1 names as external collaborators (window/GL
// context, joystick polling, audio output callback), grounded on the
// teacher's go-sdl2 usage, paired with the go-gl OpenGL 2.1 bindings
// the NES/Chip-8 emulator repos in the retrieved pack (jyane-jnes,
// bradford-hamilton-chippy, thelolagemann-gomeboy) reach for whenever
// they drive a shader-backed presentation quad instead of a 2D blitter.
package platform

import (
	"time"
	"unsafe"

	gl "github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
	"github.com/retrograde-labs/pixelforge/internal/display"
	"github.com/retrograde-labs/pixelforge/internal/input"
)

// WindowConfig mirrors the spec §6 display.* configuration entries that
// affect window creation.
type WindowConfig struct {
	Title        string
	Width        int // virtual canvas width; 0 fits the monitor work area
	Height       int
	Scale        int // 0 picks the largest integer scale that fits the display
	Fullscreen   bool
	VerticalSync bool
	Effect       string // GLSL 1.20 fragment-effect snippet (spec §4.3, §6); empty selects the passthrough
}

// Platform owns the SDL window and its OpenGL 2.1+ context (spec §4.3
// "GL 2.1+ context"), the presentation texture, and the linked effect
// shader program, and implements input.Poller by querying SDL's
// keyboard/mouse/game controller state once per frame (spec §4.5
// step 1).
type Platform struct {
	window    *sdl.Window
	glContext sdl.GLContext

	textureID uint32
	program   uint32
	uniforms  effectUniforms
	bootTime  time.Time

	canvasW, canvasH int
	destRect         sdl.Rect

	audioDev sdl.AudioDeviceID

	shouldClose  bool
	focusActive  bool
	mouseCaptive bool

	openControllers map[int32]*sdl.GameController
}

// Open initializes SDL video+audio+joystick subsystems, creates a
// window with a GL 2.1+ context sized per cfg (spec §4.3 "Window/canvas
// sizing"), and links cfg.Effect (or the passthrough default) into the
// presentation shader program.
func Open(cfg WindowConfig) (*Platform, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, apperr.Wrap(apperr.ErrPlatform, "sdl init", err)
	}

	canvasW, canvasH := cfg.Width, cfg.Height
	scale := cfg.Scale

	var displayW, displayH int32
	if bounds, err := sdl.GetDisplayUsableBounds(0); err == nil {
		displayW, displayH = bounds.W, bounds.H
	} else {
		displayW, displayH = 1280, 720
	}

	if canvasW == 0 || canvasH == 0 {
		canvasW, canvasH = int(displayW), int(displayH)
	}
	if scale <= 0 {
		scale = largestFittingScale(canvasW, canvasH, int(displayW), int(displayH))
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 0)

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(canvasW*scale), int32(canvasH*scale),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, apperr.Wrap(apperr.ErrPlatform, "create window", err)
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, apperr.Wrap(apperr.ErrPlatform, "create GL context", err)
	}

	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return nil, apperr.Wrap(apperr.ErrPlatform, "init GL bindings", err)
	}

	swapInterval := 0
	if cfg.VerticalSync {
		swapInterval = 1
	}
	sdl.GLSetSwapInterval(swapInterval)

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(canvasW), int32(canvasH), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	program, err := compileEffectProgram(cfg.Effect)
	if err != nil {
		gl.DeleteTextures(1, &texID)
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	p := &Platform{
		window:          window,
		glContext:       glContext,
		textureID:       texID,
		program:         program,
		uniforms:        lookupEffectUniforms(program),
		bootTime:        time.Now(),
		canvasW:         canvasW,
		canvasH:         canvasH,
		focusActive:     true,
		openControllers: make(map[int32]*sdl.GameController),
	}
	p.recomputeDestRect()
	return p, nil
}

func largestFittingScale(canvasW, canvasH, displayW, displayH int) int {
	scale := 1
	for s := 1; s <= 16; s++ {
		if canvasW*s <= displayW && canvasH*s <= displayH {
			scale = s
		}
	}
	return scale
}

func (p *Platform) recomputeDestRect() {
	ww, wh := p.window.GetSize()
	scaleX, scaleY := float64(ww)/float64(p.canvasW), float64(wh)/float64(p.canvasH)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	outW, outH := int32(float64(p.canvasW)*scale), int32(float64(p.canvasH)*scale)
	p.destRect = sdl.Rect{
		X: (ww - outW) / 2,
		Y: (wh - outH) / 2,
		W: outW,
		H: outH,
	}
}

// CanvasSize returns the virtual screen dimensions Present expects.
func (p *Platform) CanvasSize() (int, int) { return p.canvasW, p.canvasH }

// Present uploads d's RGBA staging buffer via glTexSubImage2D and draws
// it as a triangle-strip quad through the linked effect shader program,
// honoring d's per-frame shake offset (spec §4.3 "Presentation"). u_time
// is seconds since Open, accumulated continuously across the whole
// process lifetime (never reset by a fullscreen toggle, spec §9 open
// question resolution).
func (p *Platform) Present(d *display.Display) error {
	vram := d.VRAM()
	pixels := unsafe.Pointer(&vram[0])

	ww, wh := p.window.GetSize()
	gl.Viewport(0, 0, ww, wh)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(ww), float64(wh), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.textureID)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(p.canvasW), int32(p.canvasH), gl.RGBA, gl.UNSIGNED_BYTE, pixels)

	gl.UseProgram(p.program)
	gl.Uniform1i(p.uniforms.texture0, 0)
	gl.Uniform2f(p.uniforms.textureSize, float32(p.canvasW), float32(p.canvasH))
	gl.Uniform2f(p.uniforms.screenSize, float32(ww), float32(wh))
	gl.Uniform1f(p.uniforms.screenScale, float32(p.destRect.W)/float32(p.canvasW))
	gl.Uniform1f(p.uniforms.time, float32(time.Since(p.bootTime).Seconds()))

	x0 := float32(p.destRect.X) + float32(d.ShakeOffsetX)
	y0 := float32(p.destRect.Y) + float32(d.ShakeOffsetY)
	x1 := x0 + float32(p.destRect.W)
	y1 := y0 + float32(p.destRect.H)

	gl.Begin(gl.TRIANGLE_STRIP)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(x0, y0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(x1, y0)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(x0, y1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(x1, y1)
	gl.End()

	gl.UseProgram(0)
	p.window.GLSwap()
	return nil
}

// ShouldClose reports whether a platform quit request (window close,
// Alt+F4, etc.) has been observed.
func (p *Platform) ShouldClose() bool { return p.shouldClose }

// FocusActive reports whether the window currently has input focus,
// used by the engine's event synthesis (spec §4.7).
func (p *Platform) FocusActive() bool { return p.focusActive }

// Close tears down GL and SDL resources in reverse-creation order (spec
// §7 "Boot phase ... aborts and cleanly tears down subsystems").
func (p *Platform) Close() {
	for _, c := range p.openControllers {
		c.Close()
	}
	if p.audioDev != 0 {
		sdl.CloseAudioDevice(p.audioDev)
	}
	gl.DeleteProgram(p.program)
	gl.DeleteTextures(1, &p.textureID)
	sdl.GLDeleteContext(p.glContext)
	p.window.Destroy()
	sdl.Quit()
}

var _ input.Poller = (*Platform)(nil)

func errPlatform(op string, err error) error {
	return apperr.Wrap(apperr.ErrPlatform, "platform: "+op, err)
}
