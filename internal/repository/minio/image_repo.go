package minio

import (
	"context"
	"net/url"
	"path"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/infrastructure"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// productsPrefix: каталог изображений товаров в бакете.
const productsPrefix = "productos"

// ImageRepo выдает presigned-ссылки на изображения товаров в MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// URL возвращает временную ссылку на объект productos/<filename>.
func (i *ImageRepo) URL(ctx context.Context, filename string) (string, error) {
	image, ok := domain.NewImage(i.cfg.BucketName, filename)
	if !ok {
		return "", e.Wrap(whereami.WhereAmI(), e.ErrInvalidImageName)
	}

	mime, err := infrastructure.GetMIMEFromExtension(image.ObjectKey)
	if err != nil {
		return "", e.Wrap(filename, err)
	}

	params := url.Values{}
	params.Set("response-content-type", mime)

	u, err := i.mc.PresignedGetObject(ctx, image.Bucket, path.Join(productsPrefix, image.ObjectKey), i.cfg.ImageURLTTL, params)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}

// StaticImageRepo строит ссылки на статические файлы внешнего API: <prefix>/productos/<filename>.
type StaticImageRepo struct {
	prefix string
}

func NewStaticImageRepo(prefix string) *StaticImageRepo {
	return &StaticImageRepo{prefix: prefix}
}

func (s *StaticImageRepo) URL(_ context.Context, filename string) (string, error) {
	image, ok := domain.NewImage("", filename)
	if !ok {
		return "", e.Wrap(whereami.WhereAmI(), e.ErrInvalidImageName)
	}

	if _, err := infrastructure.GetMIMEFromExtension(image.ObjectKey); err != nil {
		return "", e.Wrap(filename, err)
	}

	return s.prefix + "/" + productsPrefix + "/" + url.PathEscape(image.ObjectKey), nil
}
