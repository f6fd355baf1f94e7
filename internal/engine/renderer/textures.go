package renderer

import (
	"fmt"

	"github.com/Faultbox/furgroom/internal/engine/texture"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/noise"
)

// patternTextures maps patterns to their GL textures. A texture lives as
// long as some draw references its pattern each frame.
type patternTextures struct {
	upload  func(*noise.Pattern) (*texture.Texture, error)
	release func(*texture.Texture)

	textures map[*noise.Pattern]*texture.Texture
	used     map[*noise.Pattern]bool
}

func newPatternTextures() *patternTextures {
	return &patternTextures{
		upload: func(p *noise.Pattern) (*texture.Texture, error) {
			return texture.Upload(p.Image(), texture.Options{Repeat: true, Mipmaps: true})
		},
		release:  (*texture.Texture).Delete,
		textures: make(map[*noise.Pattern]*texture.Texture),
		used:     make(map[*noise.Pattern]bool),
	}
}

// acquire returns the texture of p, uploading it on first use. A failed
// upload is not cached, so the next frame tries again.
func (c *patternTextures) acquire(p *noise.Pattern) (t *texture.Texture, uploaded bool, err error) {
	if p == nil {
		return nil, false, fmt.Errorf("%w: no pattern to bind", fur.ErrResource)
	}
	c.used[p] = true
	if t, ok := c.textures[p]; ok {
		return t, false, nil
	}
	t, err = c.upload(p)
	if err != nil {
		return nil, false, fmt.Errorf("%w: pattern upload (size %d): %v", fur.ErrResource, p.Size(), err)
	}
	c.textures[p] = t
	return t, true, nil
}

// lookup returns a texture acquired earlier.
func (c *patternTextures) lookup(p *noise.Pattern) (*texture.Texture, bool) {
	t, ok := c.textures[p]
	return t, ok
}

// begin forgets which patterns were referenced.
func (c *patternTextures) begin() {
	clear(c.used)
}

// sweep releases textures whose pattern nothing referenced since begin.
func (c *patternTextures) sweep() int {
	n := 0
	for p, t := range c.textures {
		if !c.used[p] {
			c.release(t)
			delete(c.textures, p)
			n++
		}
	}
	return n
}

// releaseAll drops every texture.
func (c *patternTextures) releaseAll() {
	for p, t := range c.textures {
		c.release(t)
		delete(c.textures, p)
	}
	clear(c.used)
}
