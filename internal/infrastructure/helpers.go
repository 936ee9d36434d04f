package infrastructure

import (
	"path"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// GetMIMEFromExtension возвращает MIME-тип изображения по расширению файла.
// Поддерживает jpeg, jpg, png, webp. Для остальных возвращает e.ErrUnsupportedMediaType.
func GetMIMEFromExtension(filename string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "jpeg", "jpg":
		return "image/jpeg", nil
	case "png":
		return "image/png", nil
	case "webp":
		return "image/webp", nil
	default:
		return "application/octet-stream", e.ErrUnsupportedMediaType
	}
}
