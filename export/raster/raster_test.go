package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/curveplate/curveplate"
)

func TestWritePNG(t *testing.T) {
	outline, err := curveplate.BuildOutline(curveplate.Straight{Gauge: 16.5, Length: 200})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, outline, Options{PixelsPerMM: 2, Padding: 5}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	// 200x16.5 mm plus 5 mm padding each side at 2 px/mm.
	bounds := img.Bounds()
	require.Equal(t, 420, bounds.Dx())
	require.Equal(t, 53, bounds.Dy())

	// Center of the template is filled, the padding stays white.
	r, g, b, _ := img.At(bounds.Dx()/2, bounds.Dy()/2).RGBA()
	require.Less(t, r+g+b, uint32(3*0x8000), "template interior should be dark")

	r, g, b, _ = img.At(2, 2).RGBA()
	require.Equal(t, uint32(3*0xffff), r+g+b, "padding should be white")
}

func TestWritePNG_Defaults(t *testing.T) {
	outline, err := curveplate.BuildOutline(curveplate.Transition{
		Gauge: 16.5, Radius: 300, Length: 150, Direction: curveplate.Left,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, outline, Options{}))

	_, err = png.Decode(&buf)
	require.NoError(t, err)
}

func TestWritePNG_NilOutline(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WritePNG(&buf, nil, Options{}))
}
