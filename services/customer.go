package services

import (
	"apptransaction/logging"
	"apptransaction/models"

	"github.com/jinzhu/gorm"
)

const (
	customerEntity       = "Customer"
	customerOrPlanEntity = "Customer or Plan"
)

// CustomerService implements customer CRUD and the customer-to-plan and
// customer-to-transaction associations. Every method works inside the
// transaction it is given; committing or rolling back is the caller's job.
type CustomerService struct {
	log          *logging.Pair
	transactions *TransactionService
}

func NewCustomerService(log *logging.Pair, transactions *TransactionService) *CustomerService {
	return &CustomerService{log: log, transactions: transactions}
}

func (s *CustomerService) Create(tx *gorm.DB, in models.CustomerCreate) (*models.Customer, error) {
	customer := in.Customer()
	if err := tx.Create(&customer).Error; err != nil {
		s.log.Error.WithError(err).WithField("payload", dump(in)).Error("Error creating customer")
		return nil, ErrInternal
	}
	s.log.Success.WithField("customer", dump(customer)).Info("Customer created")
	return &customer, nil
}

func (s *CustomerService) Get(tx *gorm.DB, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := find(tx, s.log.Error, customerEntity, &customer, id); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Update(tx *gorm.DB, id int64, in models.CustomerUpdate) (*models.Customer, error) {
	customer, err := s.Get(tx, id)
	if err != nil {
		return nil, err
	}

	fields := in.Fields()
	if len(fields) == 0 {
		return customer, nil
	}
	if err := tx.Model(customer).Updates(fields).Error; err != nil {
		s.log.Error.WithError(err).WithField("id", id).WithField("fields", dump(fields)).Error("Error updating customer")
		return nil, ErrInternal
	}

	updated, err := s.Get(tx, id)
	if err != nil {
		return nil, err
	}
	s.log.Success.WithField("customer", dump(updated)).Info("Customer updated")
	return updated, nil
}

// Delete removes the customer along with its plan links and transactions.
func (s *CustomerService) Delete(tx *gorm.DB, id int64) error {
	customer, err := s.Get(tx, id)
	if err != nil {
		return err
	}

	if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.CustomerPlan{}).Error; err != nil {
		return s.deleteFailed(id, err)
	}
	if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Transaction{}).Error; err != nil {
		return s.deleteFailed(id, err)
	}
	if err := tx.Delete(customer).Error; err != nil {
		return s.deleteFailed(id, err)
	}
	s.log.Success.WithField("id", id).Info("Customer deleted")
	return nil
}

func (s *CustomerService) deleteFailed(id int64, err error) error {
	s.log.Error.WithError(err).WithField("id", id).Error("Error deleting customer")
	return ErrInternal
}

func (s *CustomerService) List(tx *gorm.DB) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := tx.Order("id asc").Find(&customers).Error; err != nil {
		s.log.Error.WithError(err).Error("Error listing customers")
		return nil, ErrInternal
	}
	return customers, nil
}

// AddPlan links an existing customer to an existing plan.
func (s *CustomerService) AddPlan(tx *gorm.DB, customerID, planID int64, status models.PlanStatus) (*models.CustomerPlan, error) {
	var customer models.Customer
	if err := find(tx, s.log.Error, customerOrPlanEntity, &customer, customerID); err != nil {
		return nil, err
	}
	var plan models.Plan
	if err := find(tx, s.log.Error, customerOrPlanEntity, &plan, planID); err != nil {
		return nil, err
	}

	link := models.CustomerPlan{CustomerID: customer.ID, PlanID: plan.ID, Status: status}
	if err := tx.Create(&link).Error; err != nil {
		s.log.Error.WithError(err).WithField("customer_plan", dump(link)).Error("Error creating customer plan")
		return nil, ErrInternal
	}
	s.log.Success.WithField("customer_plan", dump(link)).Info("Customer plan created")
	return &link, nil
}

// ListPlans returns the customer's plan links whose status is exactly status.
func (s *CustomerService) ListPlans(tx *gorm.DB, customerID int64, status models.PlanStatus) ([]models.CustomerPlan, error) {
	if _, err := s.Get(tx, customerID); err != nil {
		return nil, err
	}

	links := []models.CustomerPlan{}
	err := tx.Where("customer_id = ? AND status = ?", customerID, status).
		Order("id asc").
		Find(&links).Error
	if err != nil {
		s.log.Error.WithError(err).WithField("customer_id", customerID).Error("Error listing customer plans")
		return nil, ErrInternal
	}
	return links, nil
}

// AddTransaction records a transaction owned by customerID, whatever
// customer_id the payload carried.
func (s *CustomerService) AddTransaction(tx *gorm.DB, customerID int64, in models.TransactionCreate) (*models.Transaction, error) {
	if _, err := s.Get(tx, customerID); err != nil {
		return nil, err
	}
	in.CustomerID = customerID
	return s.transactions.insert(tx, in)
}

func (s *CustomerService) ListTransactions(tx *gorm.DB, customerID int64) ([]models.Transaction, error) {
	if _, err := s.Get(tx, customerID); err != nil {
		return nil, err
	}
	return s.transactions.listBy(tx, customerID)
}
