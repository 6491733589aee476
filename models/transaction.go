package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction pertence a exatamente um cliente.
type Transaction struct {
	ID          int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	CustomerID  int64           `gorm:"not null;index" json:"customer_id"`
	CreatedAt   *time.Time      `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}

// TransactionCreate is the payload for new transactions. On the
// customer-scoped route CustomerID is overwritten with the path id.
type TransactionCreate struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required,money"`
	Description string           `json:"description" binding:"max=2000"`
	CustomerID  int64            `json:"customer_id"`
}

func (in TransactionCreate) Transaction() Transaction {
	t := Transaction{Description: in.Description, CustomerID: in.CustomerID}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	return t
}

// TransactionUpdate never moves a transaction to another customer.
type TransactionUpdate struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,money"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
}

func (in TransactionUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	return fields
}
