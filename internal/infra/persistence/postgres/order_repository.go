package postgres

import (
	"context"
	"time"

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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order with its item snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order amounts violate constraints")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVendorNotFound.WrapMessage("invalid vendor or customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an order from the primary and locks its row.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *orderRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListByCustomer retrieves a customer's orders, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	return toOrderDomainList(orderModels), nil
}

// ListByVendor retrieves a vendor's orders, newest first, optionally filtered by status.
func (repo *orderRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by vendor")
	}

	return toOrderDomainList(orderModels), nil
}

// ListByVendorCreatedBetween retrieves a vendor's orders created in [from, to), oldest first.
func (repo *orderRepository) ListByVendorCreatedBetween(ctx context.Context, vendorID uuid.UUID, from, to time.Time) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ? AND created_at >= ? AND created_at < ?", vendorID, from.UTC(), to.UTC()).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by creation window")
	}

	return toOrderDomainList(orderModels), nil
}

// Update saves status and amounts of an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":             order.Status.String(),
			"amount_paid":        order.AmountPaid,
			"amount_outstanding": order.AmountOutstanding,
			"updated_at":         gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidPaymentAmount
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CreatePayment persists a payment record.
func (repo *orderRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		ID:         payment.ID,
		OrderID:    payment.OrderID,
		CustomerID: payment.CustomerID,
		Amount:     payment.Amount,
		Reference:  payment.Reference,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPaymentAmount
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// ListPayments retrieves the payments of an order in the order they were made.
func (repo *orderRepository) ListPayments(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, &entity.Payment{
			ID:         paymentM.ID,
			OrderID:    paymentM.OrderID,
			CustomerID: paymentM.CustomerID,
			Amount:     paymentM.Amount,
			Reference:  paymentM.Reference,
			CreatedAt:  paymentM.CreatedAt,
		})
	}

	return payments, nil
}

// --- Mapper Functions ---

func toOrderDomainList(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			MenuID:    item.MenuID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}

	return &entity.Order{
		ID:                data.ID,
		CustomerID:        data.CustomerID,
		VendorID:          data.VendorID,
		Description:       data.Description,
		Items:             items,
		AmountDue:         data.AmountDue,
		AmountPaid:        data.AmountPaid,
		AmountOutstanding: data.AmountOutstanding,
		Status:            entity.OrderStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			MenuID:    item.MenuID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}

	return &model.OrderModel{
		ID:                data.ID,
		CustomerID:        data.CustomerID,
		VendorID:          data.VendorID,
		Description:       data.Description,
		Items:             items,
		AmountDue:         data.AmountDue,
		AmountPaid:        data.AmountPaid,
		AmountOutstanding: data.AmountOutstanding,
		Status:            data.Status.String(),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
