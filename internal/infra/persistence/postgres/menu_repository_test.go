package postgres

import (
	"context"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuRepository_Delete_ScopedToVendor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)
	vendorID, menuID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM "menus" WHERE id = \$1 AND vendor_id = \$2`).
		WithArgs(menuID, vendorID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), vendorID, menuID)
	assert.ErrorIs(t, err, repository.ErrMenuNotFound)
}

func TestMenuRepository_Update_OtherVendorsMenu(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectExec(`UPDATE "menus" SET .* WHERE id = \$\d+ AND vendor_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Menu{ID: uuid.New(), VendorID: uuid.New(), Name: "Jollof", Price: 1500})
	assert.ErrorIs(t, err, repository.ErrMenuNotFound)
}

func TestMenuRepository_AdjustQuantity_CheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectExec(`UPDATE "menus" SET "quantity"=quantity \+ \$1`).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation})

	err := repo.AdjustQuantity(context.Background(), uuid.New(), -5)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestMenuRepository_FindByVendorAndIDsForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)
	vendorID, menuID := uuid.New(), uuid.New()

	columns := []string{"id", "vendor_id", "name", "description", "price", "quantity", "is_recurring", "frequency_of_recurrence"}
	mock.ExpectQuery(`SELECT \* FROM "menus" WHERE vendor_id = \$1 AND id IN \(\$2\) ORDER BY id FOR UPDATE`).
		WithArgs(vendorID, menuID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(menuID.String(), vendorID.String(), "Suya", "", 800, 4, false, ""))

	menus, err := repo.FindByVendorAndIDsForUpdate(context.Background(), vendorID, []uuid.UUID{menuID})
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, int64(800), menus[0].Price)
	assert.Equal(t, 4, menus[0].Quantity)
}

func TestMenuRepository_FindByVendorAndIDsForUpdate_NoIDs(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewMenuRepository(db)

	menus, err := repo.FindByVendorAndIDsForUpdate(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, menus)
}
