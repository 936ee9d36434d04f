package infrastructure

import (
	"testing"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMIMEFromExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"jpg", "leche.jpg", "image/jpeg"},
		{"jpeg upper", "pan.JPEG", "image/jpeg"},
		{"png", "queso.png", "image/png"},
		{"webp", "huevos.webp", "image/webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetMIMEFromExtension(tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := GetMIMEFromExtension("script.sh")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)

	_, err = GetMIMEFromExtension("noext")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}
