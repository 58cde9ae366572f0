package postgres

import (
	"context"
	"testing"

	"foodmarket/internal/domain/repository"
	"foodmarket/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "menus" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.MenuRepo().AdjustQuantity(context.Background(), uuid.New(), 2)
	})
	assert.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	businessErr := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return businessErr
	})
	assert.ErrorIs(t, err, businessErr)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("unexpected state")
		})
	})
}
