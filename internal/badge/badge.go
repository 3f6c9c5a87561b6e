// Package badge renders the printable client ID badge and the ISBN barcode
// card. Rendering is a pure function of its inputs: identical arguments
// produce pixel-identical rasters.
package badge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"

	"github.com/AleXutzZu/LibraManager/internal/utils"
)

const (
	badgeWidth  = 600
	badgeHeight = 300
	borderWidth = 2
	padding     = 20

	barcodeModuleWidth = 2
	barcodeHeight      = 75

	isbnCardWidth  = 220
	isbnCardHeight = 100

	titleSize   = 28
	headingSize = 20
	bodySize    = 16
)

// CreateBadge renders a 600x300 client badge: black border, centered
// "Biblioteca {libraryName}" title, name and issue-date blocks, and a
// Code 128 barcode of the client's short id near the bottom. The payload is
// prefixed with FNC3 so scanners recognize badge codes.
func CreateBadge(shortID, clientName, libraryName string, issueDate time.Time) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, badgeWidth, badgeHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	inner := image.Rect(borderWidth, borderWidth, badgeWidth-borderWidth, badgeHeight-borderWidth)
	draw.Draw(img, inner, image.NewUniform(color.White), image.Point{}, draw.Src)

	code, err := code128.Encode(string(code128.FNC3) + shortID)
	if err != nil {
		return nil, fmt.Errorf("encode badge barcode: %w", err)
	}
	scaled, err := barcode.Scale(code, code.Bounds().Dx()*barcodeModuleWidth, barcodeHeight)
	if err != nil {
		return nil, fmt.Errorf("scale badge barcode: %w", err)
	}

	barcodeX := (badgeWidth - scaled.Bounds().Dx()) / 2
	barcodeY := badgeHeight - padding/2 - barcodeHeight
	draw.Draw(img, scaled.Bounds().Add(image.Pt(barcodeX, barcodeY)), scaled, image.Point{}, draw.Over)

	title, err := newFace(boldFont, titleSize)
	if err != nil {
		return nil, err
	}
	defer title.Close()
	heading, err := newFace(boldFont, headingSize)
	if err != nil {
		return nil, err
	}
	defer heading.Close()
	body, err := newFace(regularFont, bodySize)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	drawCentered(img, title, "Biblioteca "+libraryName, badgeWidth/2, padding+titleSize)

	labelY := badgeHeight/2 - padding
	valueY := labelY + headingSize + padding/2

	drawLeft(img, heading, "Nume complet", padding, labelY)
	drawLeft(img, body, clientName, padding, valueY)

	drawRight(img, heading, "Emis pe", badgeWidth-padding, labelY)
	drawRight(img, body, issueDate.Format("02.01.2006"), badgeWidth-padding, valueY)

	return img, nil
}

// CreateISBN renders a 220x100 card with the EAN-13 barcode of a 13-digit
// ISBN and the digits beneath it. The encoder validates the check digit;
// malformed ISBNs fail the whole call.
func CreateISBN(isbn string) (*image.RGBA, error) {
	code, err := ean.Encode(isbn)
	if err != nil {
		return nil, fmt.Errorf("encode ISBN barcode: %w", err)
	}
	scaled, err := barcode.Scale(code, code.Bounds().Dx()*barcodeModuleWidth, 60)
	if err != nil {
		return nil, fmt.Errorf("scale ISBN barcode: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, isbnCardWidth, isbnCardHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	barcodeX := (isbnCardWidth - scaled.Bounds().Dx()) / 2
	draw.Draw(img, scaled.Bounds().Add(image.Pt(barcodeX, padding/4)), scaled, image.Point{}, draw.Over)

	digits, err := newFace(boldFont, bodySize)
	if err != nil {
		return nil, err
	}
	defer digits.Close()

	drawCentered(img, digits, isbn, isbnCardWidth/2, isbnCardHeight-padding/2)

	return img, nil
}

// EncodePNG serializes a rendered image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveBadge writes a rendered badge as "Legitimatie {name}.png" under dir
// and returns the full path.
func SaveBadge(dir, clientName string, img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("Legitimatie %s.png", utils.SanitizeFilename(clientName)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
