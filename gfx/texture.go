package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture2D is a 2D texture object with its sampling configuration.
// Wrap and filter fields may be changed between NewTexture2D and
// Generate, afterwards they are baked into the GL object.
type Texture2D struct {
	// ID of the texture object, used for all texture
	// operations that reference this particular texture.
	ID uint32

	// Dimensions of the uploaded base level in pixels.
	Width, Height int32

	// Wrapping mode on the S and T axis.
	WrapS, WrapT int32

	// Filtering mode when the texture is minified or magnified.
	MinFilter, MagFilter int32
}

// NewTexture2D allocates a texture object with repeat wrapping and
// linear filtering, the configuration the tutorial quad samples with.
func NewTexture2D() *Texture2D {
	t := Texture2D{
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.LINEAR,
		MagFilter: gl.LINEAR,
	}
	gl.GenTextures(1, &t.ID)
	return &t
}

// Generate uploads pix as the base mipmap level, applies the wrap and
// filter parameters and generates the remaining mipmap levels down
// to 1x1. Expects tightly packed RGBA rows, top row first.
func (t *Texture2D) Generate(width, height int32, pix []uint8) {
	t.Width = width
	t.Height = height

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, t.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, t.WrapT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, t.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, t.MagFilter)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Bind makes this texture the active GL_TEXTURE_2D target.
func (t *Texture2D) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Release deletes the texture object.
func (t *Texture2D) Release() {
	if t == nil || t.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
