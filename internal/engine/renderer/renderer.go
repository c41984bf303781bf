// Package renderer draws the box faces with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/boxedit/internal/box"
	"github.com/Faultbox/boxedit/internal/engine/debug"
	"github.com/Faultbox/boxedit/internal/engine/shader"
	"github.com/Faultbox/boxedit/internal/logger"
	"github.com/Faultbox/boxedit/internal/scene"
)

const faceVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;
uniform mat4 uModel;

void main() {
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const faceFragmentShader = `
#version 410 core

uniform vec4 uColor;
out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`

// floats per face: 4 corners of xyz
const faceFloats = 4 * 3

// wallPadding keeps the wall wireframe off faces dragged flush to a wall.
const wallPadding = 0.05

var wallColor = mgl32.Vec4{0.55, 0.55, 0.6, 1}

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	FaceOpacity float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	vao, vbo, ebo uint32
	versions      [box.NumFaces]uint64
	uploaded      bool

	wallVAO, wallVBO uint32
	hasWalls         bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
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
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(faceVertexShader, faceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create face shader: %w", err)
	}

	r.createBuffers()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.wallVAO != 0 {
		gl.DeleteVertexArrays(1, &r.wallVAO)
	}
	if r.wallVBO != 0 {
		gl.DeleteBuffers(1, &r.wallVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame of the scene. The selected face, if any, is drawn
// highlighted.
func (r *Renderer) Draw(s *scene.Scene, selected box.FaceID, hasSelection bool) {
	proxies := s.Proxies()
	r.upload(proxies)

	viewProj := s.ViewProjection()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
	r.program.SetMat4("uViewProj", toMat32(viewProj))

	if r.hasWalls {
		r.program.SetMat4("uModel", mgl32.Ident4())
		r.program.SetVec4("uColor", wallColor)
		gl.BindVertexArray(r.wallVAO)
		gl.DrawArrays(gl.LINES, 0, debug.BBoxWireframeVertexCount)
	}

	gl.BindVertexArray(r.vao)

	// Edges first, with depth writes, so translucent fills never hide them.
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	for id := box.FaceID(0); id < box.NumFaces; id++ {
		r.program.SetMat4("uModel", toMat32(proxies[id].Transform))
		r.program.SetVec4("uColor", edgeColor(id, hasSelection && id == selected))
		gl.DrawElementsBaseVertex(gl.LINE_LOOP, 4, gl.UNSIGNED_INT, nil, int32(id)*4)
	}

	// Fills back to front without depth writes.
	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	for _, id := range drawOrder(proxies, viewProj) {
		r.program.SetMat4("uModel", toMat32(proxies[id].Transform))
		r.program.SetVec4("uColor", FaceColor(id, r.config.FaceOpacity, hasSelection && id == selected))
		gl.DrawArrays(gl.TRIANGLE_STRIP, int32(id)*4, 4)
	}
	gl.DepthMask(true)

	gl.BindVertexArray(0)
}

// SetWalls uploads the outer box drawn as a static wireframe.
func (r *Renderer) SetWalls(b box.Bounds) {
	vertices := debug.BBoxWireframeVertices(b, wallPadding)

	if r.wallVAO == 0 {
		gl.GenVertexArrays(1, &r.wallVAO)
		gl.GenBuffers(1, &r.wallVBO)
	}
	gl.BindVertexArray(r.wallVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.wallVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.hasWalls = true
}

// upload refreshes the vertex buffer when any proxy changed.
func (r *Renderer) upload(proxies [box.NumFaces]scene.Proxy) {
	changed := !r.uploaded
	for i, p := range proxies {
		if p.Version != r.versions[i] {
			changed = true
		}
		r.versions[i] = p.Version
	}
	if !changed {
		return
	}

	vertices := packVertices(proxies)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.uploaded = true
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, box.NumFaces*faceFloats*4, nil, gl.DYNAMIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	// Outline order around the parallelogram; offset per face with base vertex.
	indices := outlineIndices
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("face buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
}
