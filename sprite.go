package main

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/croc.svg
var crocSVGData []byte

// crocSpriteSize is the raster size; drawing scales it to the player radius
const crocSpriteSize = 128

// loadCrocSprite rasterizes the embedded player sprite. A nil image means the
// renderer falls back to plain shapes.
func loadCrocSprite() *ebiten.Image {
	img, err := rasterizeSVG(crocSVGData, crocSpriteSize, crocSpriteSize)
	if err != nil {
		log.Printf("Warning: player sprite unavailable: %v", err)
		return nil
	}
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(img, "debug_croc.png")
	}
	return ebiten.NewImageFromImage(img)
}

// rasterizeSVG renders SVG data into an RGBA image of the given size
func rasterizeSVG(data []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return img, nil
}

func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("Failed to create debug PNG: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Printf("Failed to encode debug PNG: %v", err)
	}
}
