package models

import "time"

type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusInactive PlanStatus = "inactive"
)

// CustomerPlan liga um cliente a um plano (N:N). Não há unique(customer_id, plan_id):
// o mesmo vínculo pode existir mais de uma vez.
type CustomerPlan struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CustomerID int64      `gorm:"not null;index" json:"customer_id"`
	PlanID     int64      `gorm:"not null;index" json:"plan_id"`
	Status     PlanStatus `gorm:"not null;index" json:"status"`
	CreatedAt  *time.Time `json:"created_at"`
}

// CustomerPlanQuery is the query string of POST /customers/:id/plans.
type CustomerPlanQuery struct {
	PlanID int64      `form:"plan_id" binding:"required,gt=0"`
	Status PlanStatus `form:"status" binding:"required,oneof=active inactive"`
}

// PlanStatusQuery is the query string of GET /customers/:id/plans.
type PlanStatusQuery struct {
	Status PlanStatus `form:"status" binding:"required,oneof=active inactive"`
}
