package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	_, err = png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	return pngBytes, nil
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	return img, err
}

// CardBack draws a width×height card back: the deck name across the top and a QR code of
// link centred below it. An empty link leaves the QR code out.
func CardBack(name, link string, width, height int, face font.Face, fg, bg color.Color) (image.Image, error) {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()

	margin := float64(width) / 12
	dc.SetColor(fg)
	dc.SetLineWidth(margin / 4)
	dc.DrawRoundedRectangle(margin/2, margin/2, float64(width)-margin, float64(height)-margin, margin/2)
	dc.Stroke()

	dc.SetFontFace(face)
	dc.DrawStringAnchored(name, float64(width)/2, float64(height)/4, 0.5, 0.5)

	if link != "" {
		side := min(width, height) / 2
		qr, err := GenerateQRImage(link, side)
		if err != nil {
			return nil, err
		}
		qr = imaging.Resize(qr, side, side, imaging.NearestNeighbor)
		dc.DrawImageAnchored(qr, width/2, height*5/8, 0.5, 0.5)
	}

	return dc.Image(), nil
}
