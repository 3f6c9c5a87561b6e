package badge

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issueDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func TestCreateBadge_Dimensions(t *testing.T) {
	img, err := CreateBadge("C-0001", "Ana Pop", "Centrala", issueDate)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 600, 300), img.Bounds())

	// Black border, white interior.
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(300, 5))
}

func TestCreateBadge_Deterministic(t *testing.T) {
	first, err := CreateBadge("C-0001", "Ana Pop", "Centrala", issueDate)
	require.NoError(t, err)
	second, err := CreateBadge("C-0001", "Ana Pop", "Centrala", issueDate)
	require.NoError(t, err)

	firstPNG, err := EncodePNG(first)
	require.NoError(t, err)
	secondPNG, err := EncodePNG(second)
	require.NoError(t, err)

	assert.Equal(t, firstPNG, secondPNG)
}

func TestCreateBadge_DifferentInputsDiffer(t *testing.T) {
	first, err := CreateBadge("C-0001", "Ana Pop", "Centrala", issueDate)
	require.NoError(t, err)
	second, err := CreateBadge("C-0002", "Ana Pop", "Centrala", issueDate)
	require.NoError(t, err)

	assert.NotEqual(t, first.Pix, second.Pix)
}

func TestCreateISBN_Dimensions(t *testing.T) {
	img, err := CreateISBN("9780134685991")
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 220, 100), img.Bounds())
}

func TestCreateISBN_Deterministic(t *testing.T) {
	first, err := CreateISBN("9780134685991")
	require.NoError(t, err)
	second, err := CreateISBN("9780134685991")
	require.NoError(t, err)

	firstPNG, err := EncodePNG(first)
	require.NoError(t, err)
	secondPNG, err := EncodePNG(second)
	require.NoError(t, err)

	assert.Equal(t, firstPNG, secondPNG)
}

func TestCreateISBN_RejectsMalformedPayload(t *testing.T) {
	// Wrong check digit
	_, err := CreateISBN("9780134685990")
	assert.Error(t, err)

	// Wrong length
	_, err = CreateISBN("1234")
	assert.Error(t, err)

	// Non-numeric
	_, err = CreateISBN("97801346859ab")
	assert.Error(t, err)
}

func TestSaveBadge_FileName(t *testing.T) {
	dir := t.TempDir()

	img, err := CreateBadge("C-0001", "Ana Pop", "Centrala", issueDate)
	require.NoError(t, err)

	path, err := SaveBadge(dir, "Ana Pop", img)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Legitimatie Ana Pop.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
