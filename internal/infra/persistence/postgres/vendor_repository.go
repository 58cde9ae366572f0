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
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// Create persists a new vendor profile.
func (repo *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Omit("Auth").Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPhoneAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid authentication reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindByID retrieves a vendor together with its login email.
func (repo *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "vendors.id = ?", id)
}

// FindByAuthID retrieves the vendor owning a credential.
func (repo *vendorRepository) FindByAuthID(ctx context.Context, authID uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "vendors.auth_id = ?", authID)
}

func (repo *vendorRepository) findOne(ctx context.Context, query string, arg any) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Preload("Auth").
		Where(query, arg).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return toVendorDomain(&vendorM), nil
}

// List retrieves every vendor ordered by business name.
func (repo *vendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	if err := repo.db.WithContext(ctx).
		Order("business_name ASC").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// Update saves the mutable profile fields of a vendor.
func (repo *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendor.ID).
		Updates(map[string]any{
			"business_name": vendor.BusinessName,
			"phone_number":  vendor.PhoneNumber,
			"updated_at":    gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPhoneAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vendor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	vendor := &entity.Vendor{
		ID:           data.ID,
		AuthID:       data.AuthID,
		BusinessName: data.BusinessName,
		PhoneNumber:  data.PhoneNumber,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Auth != nil {
		vendor.Email = data.Auth.Email
	}

	return vendor
}

func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:           data.ID,
		AuthID:       data.AuthID,
		BusinessName: data.BusinessName,
		PhoneNumber:  data.PhoneNumber,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
