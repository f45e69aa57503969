package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"racer/internal/race"
	"racer/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// gpuMesh is a mesh uploaded to its own VAO/VBO.
type gpuMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

type Renderer struct {
	// Mesh program.
	meshProg    uint32
	uProjection int32
	uView       int32
	uModel      int32
	uColor      int32
	uAmbient    int32
	uLightDir   int32
	uLightColor int32
	meshes      map[*scene.Mesh]gpuMesh

	clearR, clearG, clearB float32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}

	r := &Renderer{
		meshProg: meshProg,
		meshes:   make(map[*scene.Mesh]gpuMesh),
	}
	r.clearR, r.clearG, r.clearB = scene.Palette.Sky.Floats()

	gl.UseProgram(meshProg)
	r.uProjection = gl.GetUniformLocation(meshProg, gl.Str("uProjection\x00"))
	r.uView = gl.GetUniformLocation(meshProg, gl.Str("uView\x00"))
	r.uModel = gl.GetUniformLocation(meshProg, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(meshProg, gl.Str("uColor\x00"))
	r.uAmbient = gl.GetUniformLocation(meshProg, gl.Str("uAmbient\x00"))
	r.uLightDir = gl.GetUniformLocation(meshProg, gl.Str("uLightDir\x00"))
	r.uLightColor = gl.GetUniformLocation(meshProg, gl.Str("uLightColor\x00"))

	ar, ag, ab := scene.Palette.Ambient.Scale(AmbientIntensity)
	gl.Uniform3f(r.uAmbient, ar, ag, ab)
	sun := mgl32.Vec3{SunX, SunY, SunZ}.Normalize()
	gl.Uniform3f(r.uLightDir, sun[0], sun[1], sun[2])
	lr, lg, lb := scene.Palette.Sunlight.Scale(SunIntensity)
	gl.Uniform3f(r.uLightColor, lr, lg, lb)

	return r, nil
}

// Upload copies every mesh referenced by objs to the GPU. Meshes shared between
// objects are uploaded once.
func (r *Renderer) Upload(objs []scene.Object) {
	for _, o := range objs {
		if _, ok := r.meshes[o.Mesh]; ok {
			continue
		}
		r.meshes[o.Mesh] = uploadMesh(o.Mesh)
	}
}

func uploadMesh(m *scene.Mesh) gpuMesh {
	var g gpuMesh
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(scene.FloatsPerVertex * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aNormal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	gl.BindVertexArray(0)
	g.count = int32(m.VertexCount())
	return g
}

func (r *Renderer) Destroy() {
	for _, g := range r.meshes {
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteVertexArrays(1, &g.vao)
	}
	r.meshes = nil
	if r.textVBO != 0 {
		gl.DeleteBuffers(1, &r.textVBO)
	}
	if r.textVAO != 0 {
		gl.DeleteVertexArrays(1, &r.textVAO)
	}
	for _, id := range []uint32{r.meshProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer and loads the camera. The projection is
// rebuilt from the framebuffer size each frame, so resizing only changes the
// aspect ratio.
func (r *Renderer) BeginFrame(cam race.Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(r.clearR, r.clearG, r.clearB, 1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(fbW) / float32(fbH)
	proj := mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
	view := mgl32.LookAtV(vec32(cam.Eye), vec32(cam.Target), mgl32.Vec3{0, 1, 0})

	gl.UseProgram(r.meshProg)
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
}

// DrawObjects draws objs with parent applied on top of each object's own
// transform.
func (r *Renderer) DrawObjects(objs []scene.Object, parent mgl32.Mat4) {
	gl.UseProgram(r.meshProg)
	for _, o := range objs {
		g, ok := r.meshes[o.Mesh]
		if !ok {
			continue
		}
		model := parent.Mul4(o.Transform.Matrix())
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		cr, cg, cb := o.Color.Floats()
		gl.Uniform3f(r.uColor, cr, cg, cb)
		gl.BindVertexArray(g.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	}
	gl.BindVertexArray(0)
}

// EndScene switches state from the 3D pass to the 2D overlay.
func (r *Renderer) EndScene() {
	gl.Disable(gl.DEPTH_TEST)
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
