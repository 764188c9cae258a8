package invaders

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Display is an ebiten.Game that drives a Cabinet one frame per Update
// and renders its 1bpp video RAM, rotated 90 degrees as the real
// cabinet's CRT is mounted (space_invaders.c's "it's 90 degrees
// rotated" comment).
type Display struct {
	Cab *Cabinet

	screen     *ebiten.Image
	showStats  bool
	frameCount uint64
	lastErr    error
}

// NewDisplay wraps cab for ebiten.RunGame.
func NewDisplay(cab *Cabinet) *Display {
	return &Display{
		Cab:    cab,
		screen: ebiten.NewImage(frameHeight, screenWidth),
	}
}

var keyBindings = map[ebiten.Key]string{
	ebiten.Key5:          "coin",
	ebiten.Key1:          "p1start",
	ebiten.Key2:          "p2start",
	ebiten.KeySpace:      "p1fire",
	ebiten.KeyArrowLeft:  "p1left",
	ebiten.KeyArrowRight: "p1right",
	ebiten.KeyA:          "p2fire",
	ebiten.KeyLeft:       "p2left",
	ebiten.KeyRight:      "p2right",
	ebiten.KeyT:          "tilt",
}

func (d *Display) Update() error {
	if d.lastErr != nil {
		return d.lastErr
	}
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	for key, name := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			d.Cab.SetInput(name, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			d.Cab.SetInput(name, false)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		d.showStats = !d.showStats
	}
	if err := d.Cab.RunFrame(); err != nil {
		d.lastErr = err
		return err
	}
	d.frameCount++
	return nil
}

// rotatedPixel maps a VRAM bit at (x,y) in the game's native 256x224
// orientation to the rotated on-screen image.
func rotatedPixel(vram []byte, x, y int) bool {
	idx := (y*screenWidth + x) / 8
	bit := uint(x) % 8
	return vram[idx]&(1<<bit) != 0
}

func (d *Display) Draw(screen *ebiten.Image) {
	vram := d.Cab.VRAM()
	img := image.NewRGBA(image.Rect(0, 0, frameHeight, screenWidth))
	for x := 0; x < screenWidth; x++ {
		for y := 0; y < frameHeight; y++ {
			on := rotatedPixel(vram, x, y)
			px := color.RGBA{0, 0, 0, 255}
			if on {
				px = color.RGBA{0, 255, 70, 255} // the classic cabinet's colour-overlay green
			}
			img.Set(y, screenWidth-1-x, px)
		}
	}
	if d.showStats {
		drawDebugText(img, fmt.Sprintf("F:%d FPS:%.0f", d.frameCount, ebiten.ActualFPS()), 2, 12)
	}
	d.screen.WritePixels(img.Pix)
	screen.DrawImage(d.screen, nil)
}

// drawDebugText renders ASCII text directly onto img using
// golang.org/x/image's fixed-width basic font — no texture atlas or shaping needed
// for a one-line stats overlay.
func drawDebugText(img *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{255, 255, 0, 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (d *Display) Layout(_, _ int) (int, int) {
	return frameHeight, screenWidth
}
