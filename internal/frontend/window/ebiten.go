//go:build !headless

package window

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

var hostKeys = map[rune]ebiten.Key{
	'1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2, '3': ebiten.KeyDigit3, '4': ebiten.KeyDigit4,
	'q': ebiten.KeyQ, 'w': ebiten.KeyW, 'e': ebiten.KeyE, 'r': ebiten.KeyR,
	'a': ebiten.KeyA, 's': ebiten.KeyS, 'd': ebiten.KeyD, 'f': ebiten.KeyF,
	'z': ebiten.KeyZ, 'x': ebiten.KeyX, 'c': ebiten.KeyC, 'v': ebiten.KeyV,
}

var haltedColor = color.RGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xFF}

type game struct {
	ctx     context.Context
	logger  *log.Logger
	machine Machine
	scale   int

	keys   [chip8.KeyCount]ebiten.Key
	image  *ebiten.Image
	pixels []byte
}

// Run opens the window and blocks until it is closed or the context is
// canceled. It must be called from the main goroutine.
func Run(ctx context.Context, logger *log.Logger, m Machine, cfg Config) error {
	scale := cfg.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	g := &game{
		ctx:     ctx,
		logger:  logger,
		machine: m,
		scale:   scale,
		pixels:  make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4),
	}
	for key, host := range keymap.Layout {
		g.keys[key] = hostKeys[host]
	}

	ebiten.SetWindowSize(chip8.DisplayWidth*scale, chip8.DisplayHeight*scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for key, host := range g.keys {
		g.machine.SetKey(uint8(key), ebiten.IsKeyPressed(host))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		g.logger.Debug("Reset requested")
		g.machine.Reset()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}

	fillPixels(g.pixels, g.machine.Frame())
	g.image.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.image, op)

	if g.machine.Halted() != nil {
		face := basicfont.Face7x13
		text.Draw(screen, haltedMessage, face, 4, face.Ascent+4, haltedColor)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth * g.scale, chip8.DisplayHeight * g.scale
}
