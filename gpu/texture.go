package gpu

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/pkg/errors"
	"github.com/vktec/gltut"
)

type Texture struct {
	ID     uint32
	Target uint32
}

// LoadTexture decodes the image at path into an immutable RGBA8 texture
// with linear filtering. Rows are uploaded top first, unflipped.
func LoadTexture(target uint32, path string) (*Texture, error) {
	img, err := gltut.LoadImage(path)
	if err != nil {
		return nil, errors.Wrap(err, "load texture")
	}
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())

	t := &Texture{Target: target}
	gl.CreateTextures(target, 1, &t.ID)
	gl.TextureStorage2D(t.ID, 1, gl.RGBA8, w, h)
	gl.TextureSubImage2D(t.ID, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	for _, p := range textureParams {
		gl.TextureParameteri(t.ID, p.name, p.value)
	}

	slog.Info("loaded texture", "path", path, "width", w, "height", h, "size", humanize.Bytes(uint64(len(img.Pix))))
	return t, nil
}

// textureParams are applied to every loaded texture. Storage has a single
// level, so the min filter must not sample mipmaps.
var textureParams = []struct {
	name  uint32
	value int32
}{
	{gl.TEXTURE_MIN_FILTER, gl.LINEAR},
	{gl.TEXTURE_MAG_FILTER, gl.LINEAR},
}

func (t *Texture) Bind(unit uint32) { gl.BindTextureUnit(unit, t.ID) }

func (t *Texture) Delete() { gl.DeleteTextures(1, &t.ID) }
