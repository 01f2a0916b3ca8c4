package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/cookierampage/rampage/internal/world"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Board image colours, RGB 0-1.
var (
	colorBackground = [3]float64{0.10, 0.10, 0.12}
	colorGrid       = [3]float64{0.16, 0.16, 0.19}
	colorBody       = [3]float64{0.25, 0.70, 0.30}
	colorHead       = [3]float64{0.95, 0.80, 0.20}
	colorFood       = [3]float64{0.55, 0.35, 0.15}
)

// Image draws snap at one pixel per cell and upscales it by scale with
// nearest-neighbour sampling, so cells stay sharp squares.
func Image(snap world.Snapshot, scale int) image.Image {
	a := snap.Arena
	dc := gg.NewContext(a.Width, a.Height)
	dc.SetRGB(colorBackground[0], colorBackground[1], colorBackground[2])
	dc.Clear()

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if (x+y)%2 == 1 {
				fillCell(dc, x, screenRow(a, y), colorGrid)
			}
		}
	}
	if snap.HasFood {
		fillCell(dc, snap.Food.X, screenRow(a, snap.Food.Y), colorFood)
	}
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		v := snap.Segments[i]
		if !a.Contains(v.Position) {
			continue
		}
		c := colorBody
		if v.Head {
			c = colorHead
		}
		fillCell(dc, v.Position.X, screenRow(a, v.Position.Y), c)
	}

	if scale <= 1 {
		return dc.Image()
	}
	return imaging.Resize(dc.Image(), a.Width*scale, a.Height*scale, imaging.NearestNeighbor)
}

func fillCell(dc *gg.Context, x, y int, c [3]float64) {
	dc.SetRGB(c[0], c[1], c[2])
	dc.DrawRectangle(float64(x), float64(y), 1, 1)
	dc.Fill()
}

// SaveImage writes the board image to dir/name.png and returns the path.
func SaveImage(snap world.Snapshot, scale int, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot dir: %w", err)
	}
	path := filepath.Join(dir, name+".png")
	if err := imaging.Save(Image(snap, scale), path); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return path, nil
}
