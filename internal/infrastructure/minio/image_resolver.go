package minio

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const defaultResolveLimit = 8

type cachedURL struct {
	url       string
	expiresAt time.Time
}

// ImageResolver кэширует ссылки на изображения и получает их пачками с ограничением одновременных запросов.
type ImageResolver struct {
	repo   usecase.ImageRepository
	ttl    time.Duration
	limit  int
	now    func() time.Time
	logger logger.Logger

	mu    sync.RWMutex
	cache map[string]cachedURL
}

// NewImageResolver: ttl задает срок жизни ссылки в кэше. Для presigned-ссылок это половина их срока.
func NewImageResolver(repo usecase.ImageRepository, ttl time.Duration, limit int, logger logger.Logger) *ImageResolver {
	if limit <= 0 {
		limit = defaultResolveLimit
	}

	return &ImageResolver{
		repo:   repo,
		ttl:    ttl,
		limit:  limit,
		now:    time.Now,
		logger: logger,
		cache:  make(map[string]cachedURL),
	}
}

func (r *ImageResolver) URL(ctx context.Context, filename string) (string, error) {
	if url, ok := r.cached(filename); ok {
		return url, nil
	}

	url, err := r.repo.URL(ctx, filename)
	if err != nil {
		return "", err
	}

	r.store(filename, url)
	return url, nil
}

// URLs возвращает ссылки для набора имен файлов. Имена с ошибкой в результат не попадают.
func (r *ImageResolver) URLs(ctx context.Context, filenames []string) map[string]string {
	const op = "ImageResolver.URLs"

	result := make(map[string]string, len(filenames))
	pending := make([]string, 0, len(filenames))
	seen := make(map[string]struct{}, len(filenames))

	for _, name := range filenames {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if url, ok := r.cached(name); ok {
			result[name] = url
			continue
		}
		pending = append(pending, name)
	}

	if len(pending) == 0 {
		return result
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	sem := make(chan struct{}, r.limit)

	for _, name := range pending {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			url, err := r.repo.URL(ctx, name)
			if err != nil {
				r.logger.Warnf("%s: failed to resolve image url, image: %s, error: %v", op, name, err)
				return
			}
			r.store(name, url)

			mu.Lock()
			result[name] = url
			mu.Unlock()
		}()
	}

	wg.Wait()
	return result
}

func (r *ImageResolver) cached(filename string) (string, bool) {
	if r.ttl <= 0 {
		return "", false
	}

	r.mu.RLock()
	entry, ok := r.cache[filename]
	r.mu.RUnlock()

	if !ok || !r.now().Before(entry.expiresAt) {
		return "", false
	}

	return entry.url, true
}

func (r *ImageResolver) store(filename, url string) {
	if r.ttl <= 0 {
		return
	}

	r.mu.Lock()
	r.cache[filename] = cachedURL{url: url, expiresAt: r.now().Add(r.ttl)}
	r.mu.Unlock()
}
