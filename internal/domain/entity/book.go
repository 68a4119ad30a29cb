package entity

import "time"

// Book is a catalogue entry owned by the user who created it.
type Book struct {
	ID          string    `json:"_id"`
	User        string    `json:"user"` // Owner ID, assigned once on creation.
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookPatch carries a partial update. Nil fields are left untouched.
type BookPatch struct {
	Title       *string
	Author      *string
	Description *string
	Price       *float64
	Category    *Category
}

// IsEmpty reports whether the patch changes nothing.
func (p *BookPatch) IsEmpty() bool {
	return p == nil || (p.Title == nil && p.Author == nil && p.Description == nil && p.Price == nil && p.Category == nil)
}
