package response_models

type Category struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products,omitempty"`
}

type Product struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Company      string `json:"company,omitempty"`
	Image        string `json:"image,omitempty"`
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category"`
}

type HomeResponse struct {
	Count int64 `json:"count"`
}

// Page is one fixed-size slice of a listing plus what pagination controls need.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasPrev bool  `json:"has_prev"`
	HasNext bool  `json:"has_next"`
	PrevNum int   `json:"prev_num,omitempty"`
	NextNum int   `json:"next_num,omitempty"`
}

func NewPage[T any](items []T, page, perPage int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	p := Page[T]{
		Items:   items,
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasPrev: page > 1,
		HasNext: page < pages,
	}
	if p.HasPrev {
		p.PrevNum = page - 1
	}
	if p.HasNext {
		p.NextNum = page + 1
	}
	return p
}

// IterPages lists page numbers for the pager, with 0 marking a gap.
func (p Page[T]) IterPages() []int {
	const edge, around = 2, 2
	var out []int
	last := 0
	for n := 1; n <= p.Pages; n++ {
		if n <= edge || n > p.Pages-edge || (n >= p.Page-around && n <= p.Page+around) {
			if last+1 != n {
				out = append(out, 0)
			}
			out = append(out, n)
			last = n
		}
	}
	return out
}
