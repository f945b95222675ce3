package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data, err := svc.GeneratePNG("4830125791")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_EmptyContentFails(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePNG("")

	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	data, err := svc.GeneratePNG("receipt")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
