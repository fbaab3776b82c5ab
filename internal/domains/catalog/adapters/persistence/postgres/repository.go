package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists dishes in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&dishRecord{})
	}
	return repo
}

// dishRecord maps the dish aggregate to a relational table.
type dishRecord struct {
	ID               int64           `gorm:"primaryKey;column:id"`
	Name             string          `gorm:"column:name"`
	Description      string          `gorm:"column:description;type:text"`
	Price            decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	Category         string          `gorm:"column:category;type:varchar(32);index"`
	ImageURL         string          `gorm:"column:image_url"`
	ARModelURL       string          `gorm:"column:ar_model_url"`
	Available        bool            `gorm:"column:is_available;index"`
	SuggestedDishIDs pq.Int64Array   `gorm:"column:suggested_dish_ids;type:bigint[]"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (dishRecord) TableName() string { return "dishes" }

// Save inserts or updates a dish.
func (r *Repository) Save(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	record := toRecord(dish)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":               record.Name,
				"description":        record.Description,
				"price":              record.Price,
				"category":           record.Category,
				"image_url":          record.ImageURL,
				"ar_model_url":       record.ARModelURL,
				"is_available":       record.Available,
				"suggested_dish_ids": record.SuggestedDishIDs,
				"updated_at":         gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a dish by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record dishRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns dishes, optionally restricted to the live menu.
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Dish, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Order("id asc")
	if onlyAvailable {
		query = query.Where("is_available = ?", true)
	}
	var records []dishRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	dishes := make([]*domain.Dish, 0, len(records))
	for i := range records {
		dishes = append(dishes, records[i].toDomain())
	}
	return dishes, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres dish repository not configured")
	}
	return nil
}

func toRecord(dish *domain.Dish) dishRecord {
	return dishRecord{
		ID:               dish.ID,
		Name:             dish.Name,
		Description:      dish.Description,
		Price:            dish.Price,
		Category:         string(dish.Category),
		ImageURL:         dish.ImageURL,
		ARModelURL:       dish.ARModelURL,
		Available:        dish.Available,
		SuggestedDishIDs: pq.Int64Array(dish.SuggestedDishIDs),
	}
}

func (r dishRecord) toDomain() *domain.Dish {
	return &domain.Dish{
		ID:               r.ID,
		Name:             r.Name,
		Description:      r.Description,
		Price:            r.Price,
		Category:         domain.Category(r.Category),
		ImageURL:         r.ImageURL,
		ARModelURL:       r.ARModelURL,
		Available:        r.Available,
		SuggestedDishIDs: append([]int64{}, r.SuggestedDishIDs...),
	}
}
