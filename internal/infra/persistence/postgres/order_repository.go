package postgres

import (
	"context"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/repository"
	"uniform/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// claimClockExpr is when an order's claim window started: conversion for former pre-orders, else creation.
const claimClockExpr = "GREATEST(created_at, COALESCE(converted_at, created_at))"

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrOrderAlreadyExists.WrapMessage(order.OrderNumber), "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order, optionally holding a row lock until the transaction ends.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := lockFor(repo.db.WithContext(ctx), forUpdate).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByOrderNumber retrieves an order by its human-facing number.
func (repo *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = string(status)
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.OrderType != "" {
		query = query.Where("order_type = ?", string(filter.OrderType))
	}
	if filter.EducationLevel != "" {
		query = query.Where("LOWER(education_level) = LOWER(?)", filter.EducationLevel)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.ClaimClockBefore != nil {
		query = query.Where(claimClockExpr+" < ?", *filter.ClaimClockBefore)
	}
	if filter.Unconfirmed {
		query = query.Where("student_confirmed_at IS NULL")
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Order("order_number ASC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update saves the order's mutable fields.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Select("*").
		Omit("id", "order_number", "student_id", "created_at").
		Updates(orderM)
	if result.Error != nil {
		return translateWriteError(result.Error, domainerrors.ErrOrderAlreadyExists, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts an OrderModel to a domain Order.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &entity.Order{
		ID:                 data.ID,
		OrderNumber:        data.OrderNumber,
		StudentID:          data.StudentID,
		StudentNumber:      data.StudentNumber,
		StudentEmail:       data.StudentEmail,
		StudentName:        data.StudentName,
		EducationLevel:     data.EducationLevel,
		OrderType:          entity.OrderType(data.OrderType),
		Items:              items,
		TotalAmount:        data.TotalAmount,
		Status:             entity.OrderStatus(data.Status),
		SlotLimit:          data.SlotLimit,
		Notes:              data.Notes,
		ReceiptData:        data.ReceiptData,
		StudentConfirmedAt: data.StudentConfirmedAt,
		PaymentDate:        data.PaymentDate,
		ClaimedDate:        data.ClaimedDate,
		ConvertedAt:        data.ConvertedAt,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order to an OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:                 data.ID,
		OrderNumber:        data.OrderNumber,
		StudentID:          data.StudentID,
		StudentNumber:      data.StudentNumber,
		StudentEmail:       data.StudentEmail,
		StudentName:        data.StudentName,
		EducationLevel:     data.EducationLevel,
		OrderType:          string(data.OrderType),
		Items:              items,
		TotalAmount:        data.TotalAmount,
		Status:             string(data.Status),
		SlotLimit:          data.SlotLimit,
		Notes:              data.Notes,
		ReceiptData:        data.ReceiptData,
		StudentConfirmedAt: data.StudentConfirmedAt,
		PaymentDate:        data.PaymentDate,
		ClaimedDate:        data.ClaimedDate,
		ConvertedAt:        data.ConvertedAt,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
