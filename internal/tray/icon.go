package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 64

var (
	iconPaper  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	iconHeader = color.RGBA{0xc0, 0x00, 0x00, 0xff}
	iconInk    = color.RGBA{0x60, 0x60, 0x60, 0xff}
)

// IconPNG renders the tray icon: a sheet of paper with a red header band
// and a 7x5 grid of day dots.
func IconPNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	margin := iconSize / 8

	fill(img, image.Rect(margin, margin, iconSize-margin, iconSize-margin), iconPaper)
	fill(img, image.Rect(margin, margin, iconSize-margin, margin+iconSize/6), iconHeader)

	inner := iconSize - 2*margin
	top := margin + iconSize/6 + 3
	for row := 0; row < 5; row++ {
		for col := 0; col < 7; col++ {
			x := margin + 3 + col*(inner-4)/7
			y := top + row*(iconSize-margin-top)/5
			fill(img, image.Rect(x, y, x+3, y+3), iconInk)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WrapICO embeds a square PNG image of the given size in a single-entry
// ICO container, the format the Windows tray requires.
func WrapICO(pngData []byte, size int) []byte {
	const headerLen = 6 + 16

	dim := byte(size)
	if size >= 256 {
		dim = 0
	}

	buf := make([]byte, headerLen, headerLen+len(pngData))
	binary.LittleEndian.PutUint16(buf[2:], 1) // type: icon
	binary.LittleEndian.PutUint16(buf[4:], 1) // image count
	buf[6] = dim
	buf[7] = dim
	binary.LittleEndian.PutUint16(buf[10:], 1)  // colour planes
	binary.LittleEndian.PutUint16(buf[12:], 32) // bits per pixel
	binary.LittleEndian.PutUint32(buf[14:], uint32(len(pngData)))
	binary.LittleEndian.PutUint32(buf[18:], headerLen)
	return append(buf, pngData...)
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
