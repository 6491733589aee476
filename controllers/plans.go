package controllers

import (
	dbpkg "apptransaction/db"
	"apptransaction/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// POST /plans
func (ctl *Controller) CreatePlan(c *gin.Context) {
	var in models.PlanCreate
	if !ctl.bindJSON(c, &in) {
		return
	}

	var out *models.Plan
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Plans.Create(tx, in)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// GET /plans
func (ctl *Controller) GetPlans(c *gin.Context) {
	var out []models.Plan
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Plans.List(tx)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// GET /plans/:id
func (ctl *Controller) GetPlanByID(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}

	var out *models.Plan
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Plans.Get(tx, id)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// PATCH|PUT /plans/:id
func (ctl *Controller) UpdatePlan(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}
	var in models.PlanUpdate
	if !ctl.bindJSON(c, &in) {
		return
	}

	var out *models.Plan
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Plans.Update(tx, id, in)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// DELETE /plans/:id
func (ctl *Controller) DeletePlan(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}

	err := dbpkg.Scoped(c, func(tx *gorm.DB) error {
		return ctl.svc.Plans.Delete(tx, id)
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"detail": "ok"})
}
