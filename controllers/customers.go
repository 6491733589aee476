package controllers

import (
	dbpkg "apptransaction/db"
	"apptransaction/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// POST /customers
func (ctl *Controller) CreateCustomer(c *gin.Context) {
	var in models.CustomerCreate
	if !ctl.bindJSON(c, &in) {
		return
	}

	var out *models.Customer
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Customers.Create(tx, in)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// GET /customers
func (ctl *Controller) GetCustomers(c *gin.Context) {
	var out []models.Customer
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Customers.List(tx)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// GET /customers/:id
func (ctl *Controller) GetCustomerByID(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}

	var out *models.Customer
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Customers.Get(tx, id)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// PATCH|PUT /customers/:id
func (ctl *Controller) UpdateCustomer(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}
	var in models.CustomerUpdate
	if !ctl.bindJSON(c, &in) {
		return
	}

	var out *models.Customer
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Customers.Update(tx, id, in)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// DELETE /customers/:id
func (ctl *Controller) DeleteCustomer(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}

	err := dbpkg.Scoped(c, func(tx *gorm.DB) error {
		return ctl.svc.Customers.Delete(tx, id)
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"detail": "ok"})
}

// POST /customers/:id/plans?plan_id=&status=
func (ctl *Controller) AddCustomerPlan(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}
	var q models.CustomerPlanQuery
	if !ctl.bindQuery(c, &q) {
		return
	}

	var out *models.CustomerPlan
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Customers.AddPlan(tx, id, q.PlanID, q.Status)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// GET /customers/:id/plans?status=
func (ctl *Controller) GetCustomerPlans(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}
	var q models.PlanStatusQuery
	if !ctl.bindQuery(c, &q) {
		return
	}

	var out []models.CustomerPlan
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Customers.ListPlans(tx, id, q.Status)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// POST /customers/:id/transactions
func (ctl *Controller) AddCustomerTransaction(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}
	var in models.TransactionCreate
	if !ctl.bindJSON(c, &in) {
		return
	}

	var out *models.Transaction
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Customers.AddTransaction(tx, id, in)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// GET /customers/:id/transactions
func (ctl *Controller) GetCustomerTransactions(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}

	var out []models.Transaction
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Customers.ListTransactions(tx, id)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}
