package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// preços e valores saem como número no JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true
}

// Plan representa uma oferta comercial que pode ser vinculada a clientes.
type Plan struct {
	ID          int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatedAt   *time.Time      `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}

type PlanCreate struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Description string           `json:"description" binding:"max=2000"`
	Price       *decimal.Decimal `json:"price" binding:"required,gte=0,money"`
}

func (in PlanCreate) Plan() Plan {
	p := Plan{Name: in.Name, Description: in.Description}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}

type PlanUpdate struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gte=0,money"`
}

func (in PlanUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	return fields
}
