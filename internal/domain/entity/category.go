package entity

// Category is the closed set of genres a book can belong to.
type Category string

const (
	CategoryAdventure Category = "Adventure"
	CategoryClassics  Category = "Classics"
	CategoryCrime     Category = "Crime"
	CategoryFantasy   Category = "Fantasy"
	CategoryHorror    Category = "Horror"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryAdventure,
		CategoryClassics,
		CategoryCrime,
		CategoryFantasy,
		CategoryHorror,
	}
}

// IsValid checks if the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAdventure, CategoryClassics, CategoryCrime, CategoryFantasy, CategoryHorror:
		return true
	default:
		return false
	}
}

// String returns the wire value of the category.
func (c Category) String() string {
	return string(c)
}
