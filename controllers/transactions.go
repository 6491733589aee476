package controllers

import (
	dbpkg "apptransaction/db"
	"apptransaction/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// POST /transactions (customer_id in the body selects the owner)
func (ctl *Controller) CreateTransaction(c *gin.Context) {
	var in models.TransactionCreate
	if !ctl.bindJSON(c, &in) {
		return
	}

	var out *models.Transaction
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Transactions.Create(tx, in)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// GET /transactions
func (ctl *Controller) GetTransactions(c *gin.Context) {
	var out []models.Transaction
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Transactions.List(tx)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// GET /transactions/:id
func (ctl *Controller) GetTransactionByID(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}

	var out *models.Transaction
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Transactions.Get(tx, id)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// PATCH|PUT /transactions/:id
func (ctl *Controller) UpdateTransaction(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}
	var in models.TransactionUpdate
	if !ctl.bindJSON(c, &in) {
		return
	}

	var out *models.Transaction
	err := dbpkg.Scoped(c, func(tx *gorm.DB) (err error) {
		out, err = ctl.svc.Transactions.Update(tx, id, in)
		return err
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, out)
}

// DELETE /transactions/:id
func (ctl *Controller) DeleteTransaction(c *gin.Context) {
	id, ok := ctl.ParamID(c, "id")
	if !ok {
		return
	}

	err := dbpkg.Scoped(c, func(tx *gorm.DB) error {
		return ctl.svc.Transactions.Delete(tx, id)
	})
	if err != nil {
		ctl.respondServiceError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"detail": "ok"})
}
