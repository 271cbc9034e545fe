package core

import (
	"errors"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/devblok/texel/gfx"
	"github.com/devblok/texel/model"
	"github.com/devblok/texel/shader"
)

// NewOpenGLRenderer creates the renderer for the textured quad.
// The shader sources and the texture image are resolved by the caller,
// the renderer only owns their GPU-side representation. A GL context
// must be current on the calling thread before Initialise is called.
func NewOpenGLRenderer(cfg RendererConfiguration, vertexSource, fragmentSource string, texture image.Image) (Renderer, error) {
	if vertexSource == "" || fragmentSource == "" {
		return nil, errors.New("both shader stage sources are required")
	}
	if texture == nil {
		return nil, errors.New("a texture image is required")
	}
	return &OpenGLRenderer{
		configuration:  cfg,
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
		textureImage:   texture,
	}, nil
}

// OpenGLRenderer draws the textured quad with OpenGL 3.3 core.
// All five GPU objects (vertex buffer, element buffer, vertex array,
// texture, shader program) are created once in Initialise and released
// once in Destroy; Frame only rebinds and draws.
type OpenGLRenderer struct {
	configuration  RendererConfiguration
	vertexSource   string
	fragmentSource string
	textureImage   image.Image

	program *shader.Program
	texture *gfx.Texture2D
	mesh    *model.Mesh

	vao uint32
	vbo uint32
	ebo uint32

	indexCount  int32
	timeUniform int32

	initialised bool
}

// Initialise sets up the configured rendering pipeline.
func (r *OpenGLRenderer) Initialise() error {
	program, err := shader.NewProgram(r.vertexSource, r.fragmentSource)
	if err != nil {
		return err
	}
	r.program = program
	r.timeUniform = program.UniformLocation("time")

	r.mesh = model.NewQuad()
	r.uploadGeometry()
	r.createTexture()

	r.initialised = true
	return nil
}

func (r *OpenGLRenderer) uploadGeometry() {
	vertices := r.mesh.Interleaved()
	indices := r.mesh.Indices()
	r.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	for _, attr := range model.VertexAttributeDescriptions() {
		gl.VertexAttribPointer(attr.Location, attr.Components, gl.FLOAT, false, model.Stride(), gl.PtrOffset(int(attr.Offset)))
		gl.EnableVertexAttribArray(attr.Location)
	}

	gl.BindVertexArray(0)
}

func (r *OpenGLRenderer) createTexture() {
	pixels, width, height := GetPixels(r.textureImage)
	r.texture = gfx.NewTexture2D()
	r.texture.Generate(width, height, pixels)
}

// Frame clears the framebuffer and issues the indexed draw for the
// two quad triangles, with elapsed handed to the time uniform.
func (r *OpenGLRenderer) Frame(elapsed float64) {
	clear := r.configuration.ClearColor
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.texture.Bind()
	r.program.Use()
	gl.Uniform1f(r.timeUniform, float32(elapsed))

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Resize adjusts the viewport to a new framebuffer size.
func (r *OpenGLRenderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Destroy destroys internal members.
func (r *OpenGLRenderer) Destroy() {
	if r == nil || !r.initialised {
		return
	}
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	r.texture.Release()
	r.program.Release()
	r.initialised = false
}
