package postgres

import (
	"context"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/errors"
	"foodmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const menuBatchSize = 100

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// Create persists a single menu.
func (repo *menuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	menuM := fromMenuDomain(menu)

	if err := repo.db.WithContext(ctx).Create(menuM).Error; err != nil {
		return translateMenuWriteError(err, "failed to create menu")
	}

	menu.ID = menuM.ID
	menu.CreatedAt = menuM.CreatedAt
	menu.UpdatedAt = menuM.UpdatedAt

	return nil
}

// CreateBatch persists menus in batches of menuBatchSize.
func (repo *menuRepository) CreateBatch(ctx context.Context, menus []*entity.Menu) error {
	if len(menus) == 0 {
		return nil
	}

	menuModels := make([]*model.MenuModel, 0, len(menus))
	for _, menu := range menus {
		menuModels = append(menuModels, fromMenuDomain(menu))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(menuModels, menuBatchSize).Error; err != nil {
		return translateMenuWriteError(err, "failed to import menus")
	}

	for i, menuM := range menuModels {
		menus[i].ID = menuM.ID
		menus[i].CreatedAt = menuM.CreatedAt
		menus[i].UpdatedAt = menuM.UpdatedAt
	}

	return nil
}

// FindByID retrieves a menu by ID.
func (repo *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error) {
	var menuM model.MenuModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&menuM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu by ID")
	}

	return toMenuDomain(&menuM), nil
}

// FindByVendorAndIDsForUpdate locks the vendor's menus among ids on the primary.
func (repo *menuRepository) FindByVendorAndIDsForUpdate(ctx context.Context, vendorID uuid.UUID, ids []uuid.UUID) ([]*entity.Menu, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var menuModels []*model.MenuModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("vendor_id = ? AND id IN ?", vendorID, ids).
		Order("id").
		Find(&menuModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock menus")
	}

	return toMenuDomainList(menuModels), nil
}

// List retrieves every menu, newest first.
func (repo *menuRepository) List(ctx context.Context) ([]*entity.Menu, error) {
	var menuModels []*model.MenuModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&menuModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menus")
	}

	return toMenuDomainList(menuModels), nil
}

// ListByVendor retrieves the menus of one vendor, newest first.
func (repo *menuRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Menu, error) {
	var menuModels []*model.MenuModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&menuModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menus by vendor")
	}

	return toMenuDomainList(menuModels), nil
}

// Update overwrites the editable fields of a menu owned by menu.VendorID.
func (repo *menuRepository) Update(ctx context.Context, menu *entity.Menu) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuModel{}).
		Where("id = ? AND vendor_id = ?", menu.ID, menu.VendorID).
		Updates(map[string]any{
			"name":                    menu.Name,
			"description":             menu.Description,
			"price":                   menu.Price,
			"quantity":                menu.Quantity,
			"is_recurring":            menu.IsRecurring,
			"frequency_of_recurrence": menu.FrequencyOfRecurrence,
			"updated_at":              gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		return translateMenuWriteError(result.Error, "failed to update menu")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuNotFound
	}

	return nil
}

// Delete removes a menu owned by vendorID.
func (repo *menuRepository) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		Delete(&model.MenuModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuNotFound
	}

	return nil
}

// AdjustQuantity adds delta to the available portions of a menu.
// The quantity >= 0 check constraint rejects overselling.
func (repo *menuRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInsufficientStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust menu quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuNotFound
	}

	return nil
}

func translateMenuWriteError(err error, details string) error {
	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("menu violates price or quantity constraints")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrVendorNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toMenuDomainList(menuModels []*model.MenuModel) []*entity.Menu {
	menus := make([]*entity.Menu, 0, len(menuModels))
	for _, menuM := range menuModels {
		menus = append(menus, toMenuDomain(menuM))
	}

	return menus
}

func toMenuDomain(data *model.MenuModel) *entity.Menu {
	if data == nil {
		return nil
	}

	return &entity.Menu{
		ID:                    data.ID,
		VendorID:              data.VendorID,
		Name:                  data.Name,
		Description:           data.Description,
		Price:                 data.Price,
		Quantity:              data.Quantity,
		IsRecurring:           data.IsRecurring,
		FrequencyOfRecurrence: data.FrequencyOfRecurrence,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromMenuDomain(data *entity.Menu) *model.MenuModel {
	if data == nil {
		return nil
	}

	return &model.MenuModel{
		ID:                    data.ID,
		VendorID:              data.VendorID,
		Name:                  data.Name,
		Description:           data.Description,
		Price:                 data.Price,
		Quantity:              data.Quantity,
		IsRecurring:           data.IsRecurring,
		FrequencyOfRecurrence: data.FrequencyOfRecurrence,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
