package db_models

// Category groups products. Names are not unique.
type Category struct {
	BaseModel
	Name     string    `gorm:"size:100;not null"`
	Products []Product `gorm:"foreignKey:CategoryID"`
}

func (c *Category) TableName() string {
	return "categories"
}
