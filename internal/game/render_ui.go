package game

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"racer/internal/scene"
)

// buildFontAtlas rasterises the printable ASCII range of the 7x13 bitmap face
// into a white-on-transparent atlas. The SolidGlyph cell is filled completely.
func buildFontAtlas() (*image.RGBA, error) {
	face := basicfont.Face7x13
	if face.Advance != FontCellW || face.Height != FontCellH {
		return nil, fmt.Errorf("font face is %dx%d, atlas expects %dx%d",
			face.Advance, face.Height, FontCellW, FontCellH)
	}
	atlas := image.NewRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{Dst: atlas, Src: image.White, Face: face}
	for ch := FontFirst; ch < SolidGlyph; ch++ {
		col, row := glyphCell(rune(ch))
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	col, row := glyphCell(SolidGlyph)
	solid := image.Rect(col*FontCellW, row*FontCellH, (col+1)*FontCellW, (row+1)*FontCellH)
	draw.Draw(atlas, solid, image.White, image.Point{}, draw.Src)
	return atlas, nil
}

func glyphCell(ch rune) (col, row int) {
	i := int(ch) - FontFirst
	return i % FontCols, i / FontCols
}

// InitFont builds the font atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	atlas, err := buildFontAtlas()
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}
	b := atlas.Bounds()

	// Upload font atlas to GL texture.
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	// Text shader program.
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxTextQuads*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// quad queues one textured rectangle in screen pixel space.
func (r *Renderer) quad(ch rune, x, y, w, h float32, col scene.RGB, alpha float32) {
	column, row := glyphCell(ch)
	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	cr, cg, cb := col.Floats()

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		x, y, u0, v0, cr, cg, cb, alpha,
		x+w, y, u1, v0, cr, cg, cb, alpha,
		x, y+h, u0, v1, cr, cg, cb, alpha,
		x+w, y, u1, v0, cr, cg, cb, alpha,
		x+w, y+h, u1, v1, cr, cg, cb, alpha,
		x, y+h, u0, v1, cr, cg, cb, alpha,
	)
}

// DrawChar queues a single character at screen pixel position (sx, sy).
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col scene.RGB) {
	if ch < FontFirst || ch >= SolidGlyph {
		return
	}
	r.quad(ch, sx, sy, float32(FontCellW)*scale, float32(FontCellH)*scale, col, 1)
}

// DrawRect queues a flat translucent panel.
func (r *Renderer) DrawRect(x, y, w, h int, col scene.RGB, alpha float32) {
	r.quad(SolidGlyph, float32(x), float32(y), float32(w), float32(h), col, alpha)
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col scene.RGB) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
