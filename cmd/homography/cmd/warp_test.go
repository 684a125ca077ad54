package cmd

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/homography/internal/geometry"
)

func TestParseQuad(t *testing.T) {
	quad, err := parseQuad("1,2, 3,4,5,6,7,8")
	require.NoError(t, err)
	assert.Equal(t, geometry.Point[float64]{X: 1, Y: 2}, quad[0])
	assert.Equal(t, geometry.Point[float64]{X: 7, Y: 8}, quad[3])

	_, err = parseQuad("1,2,3")
	require.Error(t, err)

	_, err = parseQuad("1,2,3,4,5,6,7,x")
	require.Error(t, err)
}

func TestWidthFromAspect(t *testing.T) {
	quad := [4]geometry.Point[float64]{
		{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 100}, {X: 0, Y: 100},
	}
	assert.Equal(t, 120, widthFromAspect(quad, 60))
}

func TestWarpCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.png")

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), A: 255})
		}
	}
	require.NoError(t, imaging.Save(img, input))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{
		"warp",
		"-i", input,
		"-o", output,
		"--quad", "0,0,15,0,15,15,0,15",
		"--width", "8",
		"--height", "8",
	})

	err := rootCmd.Execute()
	require.NoError(t, err)

	out, err := imaging.Open(output)
	require.NoError(t, err)
	assert.Equal(t, 8, out.Bounds().Dx())
	assert.Equal(t, 8, out.Bounds().Dy())
}

func TestWarpCommandBadQuad(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{
		"warp",
		"-i", "testdata/missing.png",
		"-o", "unused.png",
		"--quad", "1,2,3",
	})

	err := rootCmd.Execute()
	require.Error(t, err)
}
