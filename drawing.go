package surfview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Index values are uint16, so a single batch cannot address more
// vertices than that.
const maxBatchVertices = 65532

// triangleBatch accumulates screen-space triangles with per-vertex
// colors and draws them in as few DrawTriangles calls as possible.
type triangleBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func newTriangleBatch(triangleCount int) *triangleBatch {
	return &triangleBatch{
		vertices: make([]ebiten.Vertex, 0, triangleCount*3),
		indices:  make([]uint16, 0, triangleCount*3),
	}
}

// Add appends one triangle. xp/yp are projected screen coordinates,
// colors the per-corner vertex colors.
func (b *triangleBatch) Add(screen *ebiten.Image, xp, yp [3]float32, colors [3]RGBA) {
	if len(b.vertices) >= maxBatchVertices {
		b.Flush(screen)
	}

	base := uint16(len(b.vertices))
	for i := 0; i < 3; i++ {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(colors[i][0]),
			ColorG: float32(colors[i][1]),
			ColorB: float32(colors[i][2]),
			ColorA: float32(colors[i][3]),
		})
	}
	b.indices = append(b.indices, base, base+1, base+2)
}

// Flush draws everything accumulated so far and resets the batch.
func (b *triangleBatch) Flush(screen *ebiten.Image) {
	if len(b.vertices) == 0 {
		return
	}
	opts := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillAll}
	screen.DrawTriangles(b.vertices, b.indices, whiteSub, opts)
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
