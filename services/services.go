package services

import "apptransaction/logging"

// Services bundles the domain services built for one process.
type Services struct {
	Customers    *CustomerService
	Plans        *PlanService
	Transactions *TransactionService
}

// New wires every service to its entity streams in logs.
func New(logs *logging.Set) *Services {
	transactions := NewTransactionService(logs.For("transaction"))
	return &Services{
		Customers:    NewCustomerService(logs.For("customer"), transactions),
		Plans:        NewPlanService(logs.For("plan")),
		Transactions: transactions,
	}
}
