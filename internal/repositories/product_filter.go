package repositories

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter holds the optional search criteria. Zero values are ignored.
type ProductFilter struct {
	Name     string
	Price    *decimal.Decimal
	Company  string
	Category string
}

func (f ProductFilter) IsZero() bool {
	return f.Name == "" && f.Price == nil && f.Company == "" && f.Category == ""
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Scope applies the criteria as ANDed, parameterized predicates. The category
// criterion inner-joins categories; products belong to exactly one category so
// the join never duplicates rows.
func (f ProductFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Name != "" {
			db = db.Where(`products.name LIKE ? ESCAPE '\'`, containsPattern(f.Name))
		}
		if f.Price != nil {
			db = db.Where("products.price = ?", *f.Price)
		}
		if f.Company != "" {
			db = db.Where(`products.company LIKE ? ESCAPE '\'`, containsPattern(f.Company))
		}
		if f.Category != "" {
			db = db.Joins("JOIN categories ON categories.id = products.category_id").
				Where(`categories.name LIKE ? ESCAPE '\'`, containsPattern(f.Category))
		}
		return db
	}
}

// Paginate limits a query to one page. page is 1-based.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}
