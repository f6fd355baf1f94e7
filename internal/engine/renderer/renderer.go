// Package renderer draws fur surfaces with OpenGL. It implements the draw
// primitive and the named shader parameter sink the fur pipeline uses.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/furgroom/internal/engine/model"
	"github.com/Faultbox/furgroom/internal/engine/shader"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/logger"
	"github.com/Faultbox/furgroom/internal/noise"
	"github.com/Faultbox/furgroom/pkg/math"
)

// Material handles served by this renderer.
const (
	BaseMaterial fur.Handle = 1
	FurMaterial  fur.Handle = 2
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor math.Color
	BaseColor  math.Color
	LightDir   math.Vec3
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	programs map[fur.Handle]*shader.Program
	meshes   map[*model.Mesh]*gpuMesh
	textures *patternTextures

	viewProj math.Mat4
	current  *shader.Program
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		programs: make(map[fur.Handle]*shader.Program),
		meshes:   make(map[*model.Mesh]*gpuMesh),
		textures: newPatternTextures(),
		viewProj: math.Identity(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	c := cfg.ClearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)

	for handle, name := range map[fur.Handle]string{BaseMaterial: "base", FurMaterial: "fur"} {
		p, err := shader.Load(name)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("failed to create shader program: %w", err)
		}
		r.programs[handle] = p
	}

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	r.textures.releaseAll()
	for _, p := range r.programs {
		p.Delete()
	}
	r.meshes = map[*model.Mesh]*gpuMesh{}
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// SetLightDir changes the direction the light travels.
func (r *Renderer) SetLightDir(dir math.Vec3) {
	r.config.LightDir = dir
}

// Begin clears the frame and sets the camera for the draws that follow.
func (r *Renderer) Begin(viewProj math.Mat4) {
	r.viewProj = viewProj
	r.textures.begin()
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End releases textures of patterns no draw referenced this frame, which
// is how regenerated patterns free their predecessors.
func (r *Renderer) End() {
	if n := r.textures.sweep(); n > 0 {
		r.log.Debug("pattern textures released", zap.Int("count", n))
	}
	gl.UseProgram(0)
	gl.BindVertexArray(0)
	r.current = nil
}

// DrawMesh implements fur.Renderer. Missing programs and failed uploads are
// reported as fur.ErrResource.
func (r *Renderer) DrawMesh(call fur.DrawCall) error {
	program, ok := r.programs[call.Material]
	if !ok {
		return fmt.Errorf("%w: no program for material %d", fur.ErrResource, call.Material)
	}

	mesh, err := r.mesh(call.Mesh)
	if err != nil {
		return err
	}

	program.Use()
	r.current = program

	gl.UniformMatrix4fv(program.Uniform("uModel"), 1, false, call.Transform.Ptr())
	gl.UniformMatrix4fv(program.Uniform("uViewProj"), 1, false, r.viewProj.Ptr())
	light := r.config.LightDir.Normalize()
	gl.Uniform3f(program.Uniform("uLightDir"), light.X, light.Y, light.Z)

	if call.Shell != nil {
		t, uploaded, err := r.textures.acquire(call.Shell.Pattern)
		if err != nil {
			return err
		}
		if uploaded {
			r.log.Debug("pattern uploaded", zap.Uint32("texture", t.ID), zap.Int("size", call.Shell.Pattern.Size()))
		}
		call.Shell.Upload(r)
		// Shells are alpha-tested; keep them from hiding each other.
		gl.DepthMask(false)
		defer gl.DepthMask(true)
	} else {
		c := r.config.BaseColor
		gl.Uniform4f(program.Uniform("uBaseColor"), c.R, c.G, c.B, c.A)
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%w: GL error 0x%x before draw", fur.ErrResource, code)
	}

	gl.BindVertexArray(mesh.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	return nil
}

// SetFloat implements fur.ParamSink on the current program.
func (r *Renderer) SetFloat(name string, v float32) {
	gl.Uniform1f(r.current.Uniform(name), v)
}

// SetVector implements fur.ParamSink.
func (r *Renderer) SetVector(name string, v math.Vec4) {
	gl.Uniform4f(r.current.Uniform(name), v[0], v[1], v[2], v[3])
}

// SetColor implements fur.ParamSink.
func (r *Renderer) SetColor(name string, c math.Color) {
	gl.Uniform4f(r.current.Uniform(name), c.R, c.G, c.B, c.A)
}

// SetTexture implements fur.ParamSink. DrawMesh acquires the pattern's
// texture before uploading parameters; this only binds it to unit 0.
func (r *Renderer) SetTexture(name string, p *noise.Pattern) {
	t, ok := r.textures.lookup(p)
	if !ok {
		return
	}
	t.Bind(0)
	gl.Uniform1i(r.current.Uniform(name), 0)
}

func (r *Renderer) mesh(m *model.Mesh) (*gpuMesh, error) {
	if gm, ok := r.meshes[m]; ok {
		return gm, nil
	}
	if m == nil || !m.Validate() {
		return nil, fmt.Errorf("%w: mesh is not uploadable", fur.ErrResource)
	}

	gm := &gpuMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	vertexSize := int(unsafe.Sizeof(model.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gm.delete()
		return nil, fmt.Errorf("%w: mesh upload GL error 0x%x", fur.ErrResource, code)
	}

	r.meshes[m] = gm
	r.log.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int32("indices", gm.indexCount))
	return gm, nil
}

func (m *gpuMesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
