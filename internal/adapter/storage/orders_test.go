package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/niksmo/shopping-site/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertOrder = `INSERT INTO orders`
	insertItem  = `INSERT INTO order_items`
)

func newTestRepository(t *testing.T) (OrdersRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewOrdersRepository(db), mock
}

func testOrder() domain.Order {
	return domain.Order{
		ID: "testOrderID",
		Items: []domain.CartItem{
			{
				Product: domain.Product{
					ID: 1, Name: "iPhone 15 Pro", Price: 35900, Category: "手機",
				},
				Quantity: 1,
			},
			{
				Product: domain.Product{
					ID: 2, Name: "iPhone 14", Price: 24900, Category: "手機",
				},
				Quantity: 2,
			},
		},
		Total:     85700,
		Date:      "2025/1/15",
		CreatedAt: time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC),
	}
}

func expectOrderInsert(mock sqlmock.Sqlmock, o domain.Order) *sqlmock.ExpectedExec {
	return mock.ExpectExec(insertOrder).
		WithArgs(o.ID, "testSessionID", o.Total, o.Date, o.CreatedAt)
}

func TestStoreOrder(t *testing.T) {
	t.Run("CanceledContext", func(t *testing.T) {
		r := NewOrdersRepository(nil)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := r.StoreOrder(ctx, "testSessionID", domain.Order{ID: "testOrderID"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("InsertsOrderAndLines", func(t *testing.T) {
		r, mock := newTestRepository(t)
		o := testOrder()

		mock.ExpectBegin()
		expectOrderInsert(mock, o).WillReturnResult(sqlmock.NewResult(0, 1))
		prep := mock.ExpectPrepare(insertItem)
		prep.ExpectExec().
			WithArgs(o.ID, 0, 1, "iPhone 15 Pro", "手機", 35900, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		prep.ExpectExec().
			WithArgs(o.ID, 1, 2, "iPhone 14", "手機", 24900, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := r.StoreOrder(t.Context(), "testSessionID", o)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyArchived", func(t *testing.T) {
		r, mock := newTestRepository(t)
		o := testOrder()

		mock.ExpectBegin()
		expectOrderInsert(mock, o).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := r.StoreOrder(t.Context(), "testSessionID", o)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("LineFailsRollsBack", func(t *testing.T) {
		r, mock := newTestRepository(t)
		o := testOrder()
		lineErr := errors.New("check constraint violated")

		mock.ExpectBegin()
		expectOrderInsert(mock, o).WillReturnResult(sqlmock.NewResult(0, 1))
		prep := mock.ExpectPrepare(insertItem)
		prep.ExpectExec().
			WithArgs(o.ID, 0, 1, "iPhone 15 Pro", "手機", 35900, 1).
			WillReturnError(lineErr)
		mock.ExpectRollback()

		err := r.StoreOrder(t.Context(), "testSessionID", o)
		assert.ErrorIs(t, err, lineErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("OrderFailsRollsBack", func(t *testing.T) {
		r, mock := newTestRepository(t)
		o := testOrder()
		orderErr := errors.New("connection reset")

		mock.ExpectBegin()
		expectOrderInsert(mock, o).WillReturnError(orderErr)
		mock.ExpectRollback()

		err := r.StoreOrder(t.Context(), "testSessionID", o)
		assert.ErrorIs(t, err, orderErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginFails", func(t *testing.T) {
		r, mock := newTestRepository(t)
		beginErr := errors.New("too many connections")

		mock.ExpectBegin().WillReturnError(beginErr)

		err := r.StoreOrder(t.Context(), "testSessionID", testOrder())
		assert.ErrorIs(t, err, beginErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CommitFails", func(t *testing.T) {
		r, mock := newTestRepository(t)
		o := testOrder()
		commitErr := errors.New("serialization failure")

		mock.ExpectBegin()
		expectOrderInsert(mock, o).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit().WillReturnError(commitErr)

		err := r.StoreOrder(t.Context(), "testSessionID", o)
		assert.ErrorIs(t, err, commitErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
