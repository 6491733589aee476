package services

import (
	"apptransaction/logging"
	"apptransaction/models"

	"github.com/jinzhu/gorm"
)

const transactionEntity = "Transaction"

type TransactionService struct {
	log *logging.Pair
}

func NewTransactionService(log *logging.Pair) *TransactionService {
	return &TransactionService{log: log}
}

// Create records a transaction for the customer named in the payload.
func (s *TransactionService) Create(tx *gorm.DB, in models.TransactionCreate) (*models.Transaction, error) {
	var customer models.Customer
	if err := find(tx, s.log.Error, customerEntity, &customer, in.CustomerID); err != nil {
		return nil, err
	}
	return s.insert(tx, in)
}

func (s *TransactionService) insert(tx *gorm.DB, in models.TransactionCreate) (*models.Transaction, error) {
	transaction := in.Transaction()
	if err := tx.Create(&transaction).Error; err != nil {
		s.log.Error.WithError(err).WithField("payload", dump(in)).Error("Error creating transaction")
		return nil, ErrInternal
	}
	s.log.Success.WithField("transaction", dump(transaction)).Info("Transaction created")
	return &transaction, nil
}

func (s *TransactionService) Get(tx *gorm.DB, id int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := find(tx, s.log.Error, transactionEntity, &transaction, id); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionService) Update(tx *gorm.DB, id int64, in models.TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.Get(tx, id)
	if err != nil {
		return nil, err
	}

	fields := in.Fields()
	if len(fields) == 0 {
		return transaction, nil
	}
	if err := tx.Model(transaction).Updates(fields).Error; err != nil {
		s.log.Error.WithError(err).WithField("id", id).WithField("fields", dump(fields)).Error("Error updating transaction")
		return nil, ErrInternal
	}

	updated, err := s.Get(tx, id)
	if err != nil {
		return nil, err
	}
	s.log.Success.WithField("transaction", dump(updated)).Info("Transaction updated")
	return updated, nil
}

func (s *TransactionService) Delete(tx *gorm.DB, id int64) error {
	transaction, err := s.Get(tx, id)
	if err != nil {
		return err
	}
	if err := tx.Delete(transaction).Error; err != nil {
		s.log.Error.WithError(err).WithField("id", id).Error("Error deleting transaction")
		return ErrInternal
	}
	s.log.Success.WithField("id", id).Info("Transaction deleted")
	return nil
}

func (s *TransactionService) List(tx *gorm.DB) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := tx.Order("id asc").Find(&transactions).Error; err != nil {
		s.log.Error.WithError(err).Error("Error listing transactions")
		return nil, ErrInternal
	}
	return transactions, nil
}

func (s *TransactionService) listBy(tx *gorm.DB, customerID int64) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := tx.Where("customer_id = ?", customerID).Order("id asc").Find(&transactions).Error
	if err != nil {
		s.log.Error.WithError(err).WithField("customer_id", customerID).Error("Error listing customer transactions")
		return nil, ErrInternal
	}
	return transactions, nil
}
