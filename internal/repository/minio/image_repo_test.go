package minio

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticImageRepo_URL(t *testing.T) {
	repo := NewStaticImageRepo("/uploads")

	got, err := repo.URL(context.Background(), "leche.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/productos/leche.jpg", got)

	got, err = repo.URL(context.Background(), "pan dulce.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/productos/pan%20dulce.png", got)
}

func TestStaticImageRepo_URLRejectsBadNames(t *testing.T) {
	repo := NewStaticImageRepo("/uploads")

	_, err := repo.URL(context.Background(), "../etc/passwd.png")
	assert.ErrorIs(t, err, e.ErrInvalidImageName)

	_, err = repo.URL(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrInvalidImageName)

	_, err = repo.URL(context.Background(), "archivo.exe")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}
