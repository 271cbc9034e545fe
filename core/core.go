package core

// Renderer describes the rendering machinery.
// It's created only with internal values set,
// it needs to be initialised with Initialise() before use.
type Renderer interface {
	// Initialise uploads the geometry, builds the shader program
	// and creates the texture. Must run on the thread that owns
	// the GL context, before the first Frame
	Initialise() error

	// Frame draws one frame. The elapsed argument is the time in
	// seconds since startup and is handed to the shaders
	Frame(elapsed float64)

	// Resize adjusts the viewport to a new framebuffer size
	Resize(width, height int)

	// Destroy destroys internal members
	Destroy()
}
