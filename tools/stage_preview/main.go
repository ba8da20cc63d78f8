// Command stage_preview renders a stage layout to a PNG thumbnail.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/1siamBot/pang/engine/core"
	"github.com/1siamBot/pang/engine/entities"
	"github.com/1siamBot/pang/engine/maplib"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// imageCanvas draws core primitives onto an RGBA image
type imageCanvas struct {
	img *image.RGBA
}

func newImageCanvas(w, h int) *imageCanvas {
	return &imageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *imageCanvas) FillRect(r core.Rect, clr color.Color) {
	rect := image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
	draw.Draw(c.img, rect, image.NewUniform(clr), image.Point{}, draw.Over)
}

func (c *imageCanvas) StrokeRect(r core.Rect, width float32, clr color.Color) {
	t := float64(width)
	c.FillRect(core.NewRect(r.X, r.Y, r.W, t), clr)
	c.FillRect(core.NewRect(r.X, r.Bottom()-t, r.W, t), clr)
	c.FillRect(core.NewRect(r.X, r.Y, t, r.H), clr)
	c.FillRect(core.NewRect(r.Right()-t, r.Y, t, r.H), clr)
}

func (c *imageCanvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	src := image.NewUniform(clr)
	for y := int(cy - radius); y <= int(cy+radius); y++ {
		for x := int(cx - radius); x <= int(cx+radius); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= radius*radius {
				draw.Draw(c.img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
			}
		}
	}
}

func (c *imageCanvas) Text(s string, x, y float64, clr color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(int(x), int(y)+face.Ascent),
	}
	d.DrawString(s)
}

// renderStage spawns the stage into a fresh world and draws one frame
func renderStage(st *maplib.Stage, wall float64) (*image.RGBA, error) {
	w := core.NewWorld(core.DefaultTickRate)
	if _, err := entities.Spawn(w, st, wall); err != nil {
		return nil, err
	}
	c := newImageCanvas(st.Width, st.Height)
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(core.Palette["raywhite"]), image.Point{}, draw.Src)
	w.Draw(c)
	c.Text(st.Name, wall+4, wall+4, core.Palette["darkgray"])
	return c.img, nil
}

// scale resizes img by factor with Catmull-Rom filtering
func scale(img *image.RGBA, factor float64) *image.RGBA {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	tw := max(1, int(float64(b.Dx())*factor))
	th := max(1, int(float64(b.Dy())*factor))
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func run(stagePath, out string, wall, factor float64) error {
	var st *maplib.Stage
	var err error
	if stagePath == "" {
		st, err = maplib.DefaultStage()
	} else {
		st, err = maplib.LoadStage(stagePath)
	}
	if err != nil {
		return err
	}
	if factor <= 0 {
		return fmt.Errorf("scale %g must be positive", factor)
	}

	img, err := renderStage(st, wall)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, scale(img, factor)); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return nil
}

func main() {
	stagePath := flag.String("stage", "", "stage YAML file (default: built-in stage)")
	out := flag.String("out", "stage.png", "output PNG")
	wall := flag.Float64("wall", 20, "wall thickness")
	factor := flag.Float64("scale", 0.5, "thumbnail scale factor")
	flag.Parse()

	if err := run(*stagePath, *out, *wall, *factor); err != nil {
		fmt.Fprintf(os.Stderr, "stage_preview: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
