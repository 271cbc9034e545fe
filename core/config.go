package core

// Configuration defines a global program configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out.
	// To unlimit, set to 0
	FramesPerSecond int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	// ClearColor the framebuffer is wiped to every frame
	ClearColor [4]float32

	// Texture is the asset name of the image sampled by the quad
	Texture string

	// VertexShader and FragmentShader are asset names of the
	// two GLSL sources the program is built from
	VertexShader   string
	FragmentShader string
}
