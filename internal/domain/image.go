package domain

import (
	"path"
	"strings"
)

// Image описывает изображение товара, которое хранится в S3 под именем файла.
type Image struct {
	Bucket    string
	ObjectKey string
}

// NewImage проверяет имя файла: только базовое имя без подкаталогов.
func NewImage(bucket string, filename string) (*Image, bool) {
	filename = strings.TrimSpace(filename)
	if filename == "" || filename == "." || filename == ".." || path.Base(filename) != filename || strings.Contains(filename, "\\") {
		return nil, false
	}

	return &Image{
		Bucket:    bucket,
		ObjectKey: filename,
	}, true
}
