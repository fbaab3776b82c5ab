package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the order ledger in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed ledger. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &orderItemRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table.
type orderRecord struct {
	ID              int64           `gorm:"primaryKey;column:id"`
	TableNumber     int             `gorm:"column:table_number;index"`
	CustomerID      *int64          `gorm:"column:customer_id"`
	Status          string          `gorm:"column:status;type:varchar(20);index"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:numeric(10,2)"`
	CreatedAt       time.Time       `gorm:"column:created_at;index"`
	StatusUpdatedAt time.Time       `gorm:"column:status_updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// orderItemRecord maps one order line. Items never exist without their
// parent order, so they are only ever written inside its transaction.
type orderItemRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	OrderID   int64           `gorm:"column:order_id;index"`
	DishID    int64           `gorm:"column:dish_id"`
	DishName  string          `gorm:"column:dish_name"`
	Quantity  int32           `gorm:"column:quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Create inserts the order and all items in a single transaction.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := orderRecord{
		TableNumber: order.TableNumber,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		TotalAmount: order.Total(),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		items := make([]orderItemRecord, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, orderItemRecord{
				OrderID:   record.ID,
				DishID:    item.DishID,
				DishName:  item.DishName,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, storageError(err)
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order with its items in insertion order.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, storageError(err)
	}
	var items []orderItemRecord
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, storageError(err)
	}
	return toDomain(record, items), nil
}

// AdvanceStatus performs the atomic check-current-status-then-set. A
// zero row count means the order is gone or another transition won.
func (r *Repository) AdvanceStatus(ctx context.Context, id int64, from, to domain.Status) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":            string(to),
			"status_updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&orderRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return storageError(err)
		}
		if count == 0 {
			return ports.ErrNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// List returns the filtered ledger slice in creation order.
func (r *Repository) List(ctx context.Context, filter ports.Filter) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Order("id asc")
	switch filter {
	case ports.FilterActive:
		query = query.Where("status <> ?", string(domain.StatusPaid))
	case ports.FilterHistory:
		query = query.Where("status = ?", string(domain.StatusPaid))
	}
	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, storageError(err)
	}
	orders := make([]*domain.Order, 0, len(records))
	for _, record := range records {
		var items []orderItemRecord
		if err := r.db.WithContext(ctx).
			Where("order_id = ?", record.ID).
			Order("id asc").
			Find(&items).Error; err != nil {
			return nil, storageError(err)
		}
		orders = append(orders, toDomain(record, items))
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func storageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ports.ErrStorageUnavailable, err)
}

func toDomain(record orderRecord, items []orderItemRecord) *domain.Order {
	order := &domain.Order{
		ID:              record.ID,
		TableNumber:     record.TableNumber,
		CustomerID:      record.CustomerID,
		Status:          domain.Status(record.Status),
		CreatedAt:       record.CreatedAt,
		StatusUpdatedAt: record.StatusUpdatedAt,
		Items:           make([]domain.Item, 0, len(items)),
	}
	for _, item := range items {
		order.Items = append(order.Items, domain.Item{
			DishID:    item.DishID,
			DishName:  item.DishName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return order
}
