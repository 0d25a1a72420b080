package db_models

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name       string          `gorm:"size:255;not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Company    string          `gorm:"size:100"`
	Image      string          `gorm:"size:255"`
	CategoryID uint            `gorm:"not null;index"`
	Category   Category        `gorm:"foreignKey:CategoryID"`
}

func (p *Product) TableName() string {
	return "products"
}

// All returns every model the catalog persists, in migration order.
func All() []interface{} {
	return []interface{}{&Category{}, &Product{}}
}
