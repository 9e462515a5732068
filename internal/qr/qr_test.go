package qr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crucial707/lab-inventory/internal/models"
)

func TestPayload(t *testing.T) {
	a := models.Asset{ID: 102, Name: "Raspberry Pi 4"}
	assert.Equal(t, "ID: 102\nName: Raspberry Pi 4", Payload(a))
}

func TestPNG(t *testing.T) {
	png, err := PNG(models.Asset{ID: 101, Name: "Arduino Uno R3"})
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
