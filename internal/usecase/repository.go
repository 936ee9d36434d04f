package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// CartRepository хранит корзину сессии под ключом cart-storage:<sessionID>.
// Load возвращает пустую корзину, если записи нет.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// SessionRepository хранит токен доступа сессии. GetToken возвращает "" без ошибки, если токена нет.
type SessionRepository interface {
	GetToken(ctx context.Context, sessionID string) (string, error)
	SetToken(ctx context.Context, sessionID, token string) error
	DeleteToken(ctx context.Context, sessionID string) error
}

type OutboxEventRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type PlacedOrderRepository interface {
	Create(ctx context.Context, order *PlacedOrder) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]PlacedOrder, error)
}

// ImageRepository превращает имя файла изображения товара в URL для клиента.
type ImageRepository interface {
	URL(ctx context.Context, filename string) (string, error)
}

// ImageBatchResolver получает ссылки сразу для списка файлов.
type ImageBatchResolver interface {
	URLs(ctx context.Context, filenames []string) map[string]string
}

// Transactor выполняет fn в одной транзакции.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
