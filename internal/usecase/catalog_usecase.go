package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// CatalogUseCase отдает витрину, то есть только видимые покупателю товары.
type CatalogUseCase struct {
	productAPI  ProductAPI
	categoryAPI CategoryAPI
	hours       *HoursUseCase
	imageRepo   ImageRepository
	logger      logger.Logger
}

func NewCatalogUC(
	productAPI ProductAPI,
	categoryAPI CategoryAPI,
	hours *HoursUseCase,
	imageRepo ImageRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productAPI:  productAPI,
		categoryAPI: categoryAPI,
		hours:       hours,
		imageRepo:   imageRepo,
		logger:      logger,
	}
}

// ListProducts возвращает активные товары в наличии или под заказ,
// с поиском по названию и бренду без учета регистра.
func (c *CatalogUseCase) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productAPI.ListProducts(ctx, "", false)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !p.Listed() {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}

		result = append(result, p)
	}

	c.resolveImages(ctx, result)

	return result, nil
}

func (c *CatalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productAPI.GetProduct(ctx, "", id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !product.Active {
		return nil, e.Wrap(op, e.ErrNotFound)
	}

	product.Image = c.imageURL(ctx, product.Image)

	return product, nil
}

// ListCategories возвращает активные категории.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryAPI.ListCategories(ctx, "")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]domain.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.Active {
			result = append(result, cat)
		}
	}

	return result, nil
}

// ImageURL возвращает ссылку на изображение товара по имени файла.
func (c *CatalogUseCase) ImageURL(ctx context.Context, filename string) (string, error) {
	const op = "CatalogUseCase.ImageURL"

	if c.imageRepo == nil {
		return "", e.Wrap(op, e.ErrNotFound)
	}

	url, err := c.imageRepo.URL(ctx, filename)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return url, nil
}

func (c *CatalogUseCase) resolveImages(ctx context.Context, products []domain.Product) {
	batch, ok := c.imageRepo.(ImageBatchResolver)
	if !ok {
		for i := range products {
			products[i].Image = c.imageURL(ctx, products[i].Image)
		}
		return
	}

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Image)
	}

	urls := batch.URLs(ctx, names)
	for i := range products {
		if url, ok := urls[products[i].Image]; ok {
			products[i].Image = url
		}
	}
}

func (c *CatalogUseCase) imageURL(ctx context.Context, filename string) string {
	if filename == "" || c.imageRepo == nil {
		return filename
	}

	url, err := c.imageRepo.URL(ctx, filename)
	if err != nil {
		c.logger.Warnf("Failed to resolve image url, image: %s, error: %v", filename, err)
		return filename
	}

	return url
}

// Storefront собирает главную страницу: товары, категории и состояние магазина.
func (c *CatalogUseCase) Storefront(ctx context.Context, filter ProductFilter) (*StorefrontRes, error) {
	const op = "CatalogUseCase.Storefront"

	res := &StorefrontRes{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.Products, err = c.ListProducts(gCtx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		res.Categories, err = c.ListCategories(gCtx)
		return err
	})
	g.Go(func() error {
		status, err := c.hours.Status(gCtx)
		if err != nil {
			return err
		}
		res.Hours = *status
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}
