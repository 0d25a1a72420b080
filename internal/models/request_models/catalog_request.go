package request_models

import "mime/multipart"

type CreateCategoryRequest struct {
	Name string `form:"name" json:"name" binding:"required,max=100"`
}

type CreateProductRequest struct {
	Name     string                `form:"name" json:"name" binding:"required,max=255"`
	Price    string                `form:"price" json:"price" binding:"required,numeric"`
	Company  string                `form:"company" json:"company" binding:"max=100"`
	Category uint                  `form:"category" json:"category" binding:"required"`
	Image    *multipart.FileHeader `form:"image" json:"-"`
}

// ProductSearchRequest carries the optional search criteria. Empty fields are ignored.
type ProductSearchRequest struct {
	Name     string `form:"name" json:"name,omitempty"`
	Price    string `form:"price" json:"price,omitempty"`
	Company  string `form:"company" json:"company,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
}

func (r ProductSearchRequest) IsEmpty() bool {
	return r.Name == "" && r.Price == "" && r.Company == "" && r.Category == ""
}
