package migrations

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&dishRecord{},
		&orderRecord{},
		&orderItemRecord{},
		&profileRecord{},
	)
}

// Dish schema mirrors the catalog Postgres adapter.
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

// Order schema mirrors the orders Postgres adapter.
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

// Order item schema mirrors the orders Postgres adapter. Lines carry the
// dish name and unit price frozen at placement.
type orderItemRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	OrderID   int64           `gorm:"column:order_id;index"`
	DishID    int64           `gorm:"column:dish_id"`
	DishName  string          `gorm:"column:dish_name"`
	Quantity  int32           `gorm:"column:quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Profile schema mirrors the restaurant Postgres adapter.
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
