package models

// Category groups articles. ID is a unique slug.
type Category struct {
	ID   string `json:"id" validate:"required,slug,max=40"`
	Name string `json:"name" validate:"required,max=60"`
}

// DefaultCategories is the fixed set the site starts with.
func DefaultCategories() []Category {
	return []Category{
		{ID: "technology", Name: "Technology"},
		{ID: "business", Name: "Business"},
		{ID: "design", Name: "Design"},
		{ID: "marketing", Name: "Marketing"},
	}
}

// FindCategory returns the index of id in cats or -1.
func FindCategory(cats []Category, id string) int {
	for i, c := range cats {
		if c.ID == id {
			return i
		}
	}
	return -1
}
