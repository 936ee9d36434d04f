package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// PlacedOrderRepo: журнал заказов, успешно отправленных во внешний API.
type PlacedOrderRepo struct {
	pool *pgxpool.Pool
	conv converter.PlacedOrderConverter
}

func NewPlacedOrderRepo(pool *pgxpool.Pool, conv converter.PlacedOrderConverter) *PlacedOrderRepo {
	return &PlacedOrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create пишет запись в транзакции из контекста.
func (p *PlacedOrderRepo) Create(ctx context.Context, order *usecase.PlacedOrder) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(order)
	query := `
		INSERT INTO placed_orders (
			order_id,
			session_id,
			total,
			fulfillment_at,
			created_at
		) VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := tx.Exec(ctx, query,
		model.OrderID,
		model.SessionID,
		model.Total,
		model.FulfillmentAt,
		model.CreatedAt,
	); err != nil {
		if postgresDuplicate(err) {
			return fmt.Errorf("%s: order %s already recorded", whereami.WhereAmI(), order.OrderID)
		}

		return fmt.Errorf("%s: failed to insert placed order: %w", whereami.WhereAmI(), err)
	}

	return nil
}

func (p *PlacedOrderRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]usecase.PlacedOrder, error) {
	query := `
		SELECT id, order_id, session_id, total, fulfillment_at, created_at
		FROM placed_orders
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query placed orders: %w", whereami.WhereAmI(), err)
	}
	defer rows.Close()

	res := make([]usecase.PlacedOrder, 0)
	for rows.Next() {
		var model converter.PlacedOrderModel
		if err := rows.Scan(
			&model.ID,
			&model.OrderID,
			&model.SessionID,
			&model.Total,
			&model.FulfillmentAt,
			&model.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: failed to scan placed order: %w", whereami.WhereAmI(), err)
		}

		res = append(res, p.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iterator error: %w", whereami.WhereAmI(), err)
	}

	return res, nil
}
