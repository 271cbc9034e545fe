package main

import (
	"os"
	"runtime"
	"strconv"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/texel/asset"
	"github.com/devblok/texel/core"
	"github.com/devblok/texel/gfx"
)

func init() {
	runtime.LockOSThread()
}

const windowTitle = "texel"

func configuration() core.Configuration {
	return core.Configuration{
		Time: core.TimeConfiguration{
			FramesPerSecond: envyInt("TEXEL_FPS", 60),
		},
		Renderer: core.RendererConfiguration{
			ScreenWidth:    uint32(envyInt("TEXEL_WIDTH", 800)),
			ScreenHeight:   uint32(envyInt("TEXEL_HEIGHT", 600)),
			ClearColor:     [4]float32{0.2, 0.3, 0.3, 1.0},
			Texture:        envy.Get("TEXEL_TEXTURE", "container.png"),
			VertexShader:   "shaders/texture.vert",
			FragmentShader: "shaders/texture.frag",
		},
	}
}

func envyInt(key string, fallback int) int {
	value, err := strconv.Atoi(envy.Get(key, strconv.Itoa(fallback)))
	if err != nil {
		log.Warnf("%s is not a number, using %d", key, fallback)
		return fallback
	}
	return value
}

func newWindow(cfg core.RendererConfiguration) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	return glfw.CreateWindow(int(cfg.ScreenWidth), int(cfg.ScreenHeight), windowTitle, nil, nil)
}

func processInput(window *glfw.Window) {
	if window.GetKey(glfw.KeyEscape) == glfw.Press {
		window.SetShouldClose(true)
	}
}

func main() {
	cfg := configuration()

	if err := glfw.Init(); err != nil {
		log.Errorf("failed to initialise GLFW: %s", err)
		os.Exit(-1)
	}

	window, err := newWindow(cfg.Renderer)
	if err != nil {
		log.Errorf("failed to create a window: %s", err)
		glfw.Terminate()
		os.Exit(-1)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Errorf("failed to resolve OpenGL functions: %s", err)
		glfw.Terminate()
		os.Exit(-1)
	}
	log.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	assets, err := asset.NewManager(envy.Get("TEXEL_ASSETS", "./assets"), envy.Get("TEXEL_PAK", ""))
	if err != nil {
		log.Errorf("failed to set up assets: %s", err)
		glfw.Terminate()
		os.Exit(-1)
	}
	defer assets.Close()

	vertexSource, err := assets.String(cfg.Renderer.VertexShader)
	if err != nil {
		log.Errorf("failed to read the vertex shader: %s", err)
		glfw.Terminate()
		os.Exit(-1)
	}
	fragmentSource, err := assets.String(cfg.Renderer.FragmentShader)
	if err != nil {
		log.Errorf("failed to read the fragment shader: %s", err)
		glfw.Terminate()
		os.Exit(-1)
	}

	textureImage, err := assets.Image(cfg.Renderer.Texture)
	if err != nil {
		log.Errorf("failed to load texture: %s", err)
		textureImage = gfx.Placeholder()
	}

	renderer, err := core.NewOpenGLRenderer(cfg.Renderer, vertexSource, fragmentSource, textureImage)
	if err != nil {
		log.Errorf("failed to create the renderer: %s", err)
		glfw.Terminate()
		os.Exit(-1)
	}
	if err := renderer.Initialise(); err != nil {
		log.Errorf("failed to initialise the renderer: %s", err)
		glfw.Terminate()
		os.Exit(-1)
	}

	renderer.Resize(window.GetFramebufferSize())
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		renderer.Resize(width, height)
	})

	timeService := core.NewTime(cfg.Time)

	for !window.ShouldClose() {
		<-timeService.FpsTicker().C
		processInput(window)
		renderer.Frame(glfw.GetTime())
		window.SwapBuffers()
		glfw.PollEvents()
	}

	timeService.Stop()
	renderer.Destroy()
	glfw.Terminate()
}
