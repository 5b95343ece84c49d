package models

import (
	"time"
)

// Item is the single entity managed by the API. The id is assigned by the
// storage backend on creation and is never accepted from clients.
type Item struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(200);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       *float64  `json:"price" gorm:"type:decimal(10,2)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
}

func (Item) TableName() string {
	return "items"
}

// ItemPatch is the client-supplied shape for create and update bodies.
// There is deliberately no ID field: backends assign ids and clients
// cannot override them. Nil fields were not supplied.
type ItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsActive    *bool    `json:"is_active"`
}

// NewItem builds an Item from a create payload, applying defaults for
// fields the client omitted. IsActive defaults to true.
func (p ItemPatch) NewItem() Item {
	item := Item{IsActive: true}
	p.Apply(&item)
	return item
}

// Apply copies the supplied fields onto item, leaving the rest untouched.
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		price := *p.Price
		item.Price = &price
	}
	if p.IsActive != nil {
		item.IsActive = *p.IsActive
	}
}

// Fields returns the supplied fields as a column map, the shape the
// remote table API expects for inserts and partial updates.
func (p ItemPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}
	return fields
}
