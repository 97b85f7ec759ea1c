package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	qrSize         = 256
	barcodeWidth   = 360
	barcodeHeight  = 90
	captionPadding = 6
)

// Generator renders QR and Code 128 images as PNG data URIs, the payload
// format the asset tables store inline.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) QRCode(text string) (string, error) {
	if text == "" {
		return "", errors.New("qr: empty payload")
	}
	buf, err := qrcode.Encode(text, qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}
	return dataURI(buf), nil
}

// Barcode renders a Code 128 symbol with the encoded text repeated in a
// human-readable caption beneath the bars.
func (g *Generator) Barcode(text string) (string, error) {
	if text == "" {
		return "", errors.New("barcode: empty payload")
	}
	symbol, err := code128.Encode(text)
	if err != nil {
		return "", fmt.Errorf("barcode encode: %w", err)
	}
	scaled, err := barcode.Scale(symbol, barcodeWidth, barcodeHeight)
	if err != nil {
		return "", fmt.Errorf("barcode scale: %w", err)
	}

	img := withCaption(scaled, text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("barcode png: %w", err)
	}
	return dataURI(buf.Bytes()), nil
}

func withCaption(symbol image.Image, text string) image.Image {
	face := basicfont.Face7x13
	captionHeight := face.Metrics().Height.Ceil() + captionPadding

	bounds := symbol.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+captionHeight))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, bounds, symbol, bounds.Min, draw.Over)

	textWidth := font.MeasureString(face, text).Ceil()
	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.P(
			(bounds.Dx()-textWidth)/2,
			bounds.Dy()+face.Metrics().Ascent.Ceil()+captionPadding/2,
		),
	}
	drawer.DrawString(text)
	return out
}

func dataURI(pngBytes []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}
