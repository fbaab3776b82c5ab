package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the restaurant profile in PostgreSQL using GORM.
// A single row with a fixed id keeps the profile unique.
type Repository struct {
	db *gorm.DB
}

const profileRowID = 1

func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&profileRecord{})
	}
	return repo
}

type profileRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Name         string    `gorm:"column:name"`
	Address      string    `gorm:"column:address"`
	Phone        string    `gorm:"column:phone"`
	Email        string    `gorm:"column:email"`
	OpeningHours string    `gorm:"column:opening_hours"`
	Description  string    `gorm:"column:description;type:text"`
	Quote        string    `gorm:"column:quote"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (profileRecord) TableName() string { return "restaurant_profile" }

func (r *Repository) Get(ctx context.Context) (*domain.Profile, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record profileRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", profileRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile is nil")
	}
	record := profileRecord{
		ID:           profileRowID,
		Name:         profile.Name,
		Address:      profile.Address,
		Phone:        profile.Phone,
		Email:        profile.Email,
		OpeningHours: profile.OpeningHours,
		Description:  profile.Description,
		Quote:        profile.Quote,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres restaurant repository not configured")
	}
	return nil
}

func (r profileRecord) toDomain() *domain.Profile {
	return &domain.Profile{
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		Email:        r.Email,
		OpeningHours: r.OpeningHours,
		Description:  r.Description,
		Quote:        r.Quote,
	}
}
