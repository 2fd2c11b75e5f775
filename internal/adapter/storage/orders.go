package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/niksmo/shopping-site/internal/core/domain"
	"github.com/niksmo/shopping-site/internal/core/port"
)

var _ port.OrderArchive = (*OrdersRepository)(nil)

// An OrdersRepository mirrors placed orders into the orders and
// order_items tables.
type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

func (r OrdersRepository) StoreOrder(
	ctx context.Context, sessionID string, o domain.Order,
) (storeErr error) {
	const op = "OrdersRepository.StoreOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		err := tx.Rollback()
		if err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	orderQuery := `
		INSERT INTO orders (order_id, session_id, total, order_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO NOTHING;
	`
	res, err := tx.ExecContext(ctx, orderQuery,
		o.ID, sessionID, o.Total, o.Date, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Warn("order already archived", "orderID", o.ID)
		return nil
	}

	if err := r.storeItems(ctx, tx, o); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r OrdersRepository) storeItems(
	ctx context.Context, tx *sql.Tx, o domain.Order,
) error {
	const op = "storeItems"
	log := slog.With("op", op)

	itemQuery := `
		INSERT INTO order_items (
			order_id, line, product_id, name, category, price, quantity
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	stmt, err := tx.PrepareContext(ctx, itemQuery)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for i, item := range o.Items {
		_, err := stmt.ExecContext(ctx,
			o.ID, i, item.Product.ID, item.Product.Name,
			item.Product.Category, item.Product.Price, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to exec: %w", op, err)
		}
	}
	return nil
}
