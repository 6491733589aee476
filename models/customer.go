package models

import "time"

// Customer é a entidade raiz: possui planos (CustomerPlan) e transações.
type Customer struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Email       string     `gorm:"not null" json:"email"`
	Age         int        `gorm:"not null" json:"age"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CustomerCreate struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Email       string `json:"email" binding:"omitempty,email"`
	Age         int    `json:"age" binding:"gte=0,lte=150"`
}

func (in CustomerCreate) Customer() Customer {
	return Customer{
		Name:        in.Name,
		Description: in.Description,
		Email:       in.Email,
		Age:         in.Age,
	}
}

// CustomerUpdate carries only the fields the client sent.
type CustomerUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Email       *string `json:"email" binding:"omitempty,optemail"`
	Age         *int    `json:"age" binding:"omitempty,gte=0,lte=150"`
}

// Fields maps present fields to their columns.
func (in CustomerUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	return fields
}
