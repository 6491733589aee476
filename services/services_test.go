package services

import (
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "apptransaction/db"
	"apptransaction/logging"
	"apptransaction/models"
)

type fixture struct {
	db      *gorm.DB
	svc     *Services
	errHook *test.Hook
}

func nullPair() (*logging.Pair, *test.Hook) {
	success, _ := test.NewNullLogger()
	failure, hook := test.NewNullLogger()
	return &logging.Pair{Success: success, Error: failure}, hook
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database, err := dbpkg.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, dbpkg.Migrate(database))

	customerLog, hook := nullPair()
	planLog, _ := nullPair()
	transactionLog, _ := nullPair()
	transactions := NewTransactionService(transactionLog)

	return &fixture{
		db: database,
		svc: &Services{
			Customers:    NewCustomerService(customerLog, transactions),
			Plans:        NewPlanService(planLog),
			Transactions: transactions,
		},
		errHook: hook,
	}
}

func (f *fixture) customer(t *testing.T, name string) *models.Customer {
	t.Helper()
	c, err := f.svc.Customers.Create(f.db, models.CustomerCreate{Name: name, Email: name + "@example.com", Age: 30})
	require.NoError(t, err)
	return c
}

func (f *fixture) plan(t *testing.T, name string, price string) *models.Plan {
	t.Helper()
	p := decimal.RequireFromString(price)
	plan, err := f.svc.Plans.Create(f.db, models.PlanCreate{Name: name, Price: &p})
	require.NoError(t, err)
	return plan
}

func strPtr(s string) *string { return &s }

func TestCustomer_CreateThenGet(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Customers.Create(f.db, models.CustomerCreate{
		Name:        "Ana",
		Description: "first customer",
		Email:       "ana@example.com",
		Age:         31,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NotNil(t, created.CreatedAt)

	got, err := f.svc.Customers.Get(f.db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "first customer", got.Description)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, 31, got.Age)
}

func TestCustomer_UnknownIDIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Customers.Get(f.db, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Customer doesn't exist")

	_, err = f.svc.Customers.Update(f.db, 42, models.CustomerUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.svc.Customers.Delete(f.db, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := f.svc.Customers.List(f.db)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCustomer_PartialUpdate(t *testing.T) {
	f := newFixture(t)
	c := f.customer(t, "ana")

	updated, err := f.svc.Customers.Update(f.db, c.ID, models.CustomerUpdate{Description: strPtr("vip")})
	require.NoError(t, err)
	assert.Equal(t, "vip", updated.Description)
	assert.Equal(t, "ana", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, 30, updated.Age)

	updated, err = f.svc.Customers.Update(f.db, c.ID, models.CustomerUpdate{Name: strPtr("Ana Maria")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "vip", updated.Description)

	same, err := f.svc.Customers.Update(f.db, c.ID, models.CustomerUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", same.Name)
}

func TestCustomer_DeleteRemovesOwnedRows(t *testing.T) {
	f := newFixture(t)
	c := f.customer(t, "ana")
	p := f.plan(t, "basic", "9.90")

	_, err := f.svc.Customers.AddPlan(f.db, c.ID, p.ID, models.PlanStatusActive)
	require.NoError(t, err)
	amount := decimal.NewFromInt(50)
	_, err = f.svc.Customers.AddTransaction(f.db, c.ID, models.TransactionCreate{Amount: &amount})
	require.NoError(t, err)

	require.NoError(t, f.svc.Customers.Delete(f.db, c.ID))

	_, err = f.svc.Customers.Get(f.db, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var links, transactions int
	f.db.Model(&models.CustomerPlan{}).Count(&links)
	f.db.Model(&models.Transaction{}).Count(&transactions)
	assert.Zero(t, links)
	assert.Zero(t, transactions)

	_, err = f.svc.Plans.Get(f.db, p.ID)
	assert.NoError(t, err)
}

func TestCustomer_AddPlanRequiresBoth(t *testing.T) {
	f := newFixture(t)
	c := f.customer(t, "ana")
	p := f.plan(t, "basic", "9.90")

	_, err := f.svc.Customers.AddPlan(f.db, c.ID, 999, models.PlanStatusActive)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Customer or Plan doesn't exist")

	_, err = f.svc.Customers.AddPlan(f.db, 999, p.ID, models.PlanStatusActive)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	f.db.Model(&models.CustomerPlan{}).Count(&count)
	assert.Zero(t, count)
}

func TestCustomer_AddPlanAllowsDuplicates(t *testing.T) {
	f := newFixture(t)
	c := f.customer(t, "ana")
	p := f.plan(t, "basic", "9.90")

	first, err := f.svc.Customers.AddPlan(f.db, c.ID, p.ID, models.PlanStatusActive)
	require.NoError(t, err)
	second, err := f.svc.Customers.AddPlan(f.db, c.ID, p.ID, models.PlanStatusActive)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCustomer_ListPlansFiltersByStatus(t *testing.T) {
	f := newFixture(t)
	ana := f.customer(t, "ana")
	bob := f.customer(t, "bob")
	basic := f.plan(t, "basic", "9.90")
	pro := f.plan(t, "pro", "29.90")

	mustAdd := func(customer, plan int64, status models.PlanStatus) {
		_, err := f.svc.Customers.AddPlan(f.db, customer, plan, status)
		require.NoError(t, err)
	}
	mustAdd(ana.ID, basic.ID, models.PlanStatusActive)
	mustAdd(ana.ID, pro.ID, models.PlanStatusInactive)
	mustAdd(bob.ID, pro.ID, models.PlanStatusActive)

	active, err := f.svc.Customers.ListPlans(f.db, ana.ID, models.PlanStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, basic.ID, active[0].PlanID)
	assert.Equal(t, models.PlanStatusActive, active[0].Status)

	inactive, err := f.svc.Customers.ListPlans(f.db, ana.ID, models.PlanStatusInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, pro.ID, inactive[0].PlanID)

	none, err := f.svc.Customers.ListPlans(f.db, ana.ID, models.PlanStatus("ACTIVE"))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.svc.Customers.ListPlans(f.db, 999, models.PlanStatusActive)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomer_AddTransactionUsesPathOwner(t *testing.T) {
	f := newFixture(t)
	ana := f.customer(t, "ana")
	bob := f.customer(t, "bob")

	amount := decimal.RequireFromString("50.25")
	created, err := f.svc.Customers.AddTransaction(f.db, ana.ID, models.TransactionCreate{
		Amount:      &amount,
		Description: "spoofed",
		CustomerID:  bob.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, ana.ID, created.CustomerID)

	stored, err := f.svc.Transactions.Get(f.db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.ID, stored.CustomerID)
	assert.True(t, amount.Equal(stored.Amount))

	forAna, err := f.svc.Customers.ListTransactions(f.db, ana.ID)
	require.NoError(t, err)
	assert.Len(t, forAna, 1)

	forBob, err := f.svc.Customers.ListTransactions(f.db, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, forBob)
}

func TestCustomer_AddTransactionUnknownCustomer(t *testing.T) {
	f := newFixture(t)

	amount := decimal.NewFromInt(50)
	_, err := f.svc.Customers.AddTransaction(f.db, 1, models.TransactionCreate{Amount: &amount})
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	f.db.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)

	_, err = f.svc.Customers.ListTransactions(f.db, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlan_CRUD(t *testing.T) {
	f := newFixture(t)
	p := f.plan(t, "basic", "9.90")

	updated, err := f.svc.Plans.Update(f.db, p.ID, models.PlanUpdate{Description: strPtr("entry level")})
	require.NoError(t, err)
	assert.Equal(t, "basic", updated.Name)
	assert.Equal(t, "entry level", updated.Description)
	assert.True(t, decimal.RequireFromString("9.90").Equal(updated.Price))

	price := decimal.RequireFromString("12.50")
	updated, err = f.svc.Plans.Update(f.db, p.ID, models.PlanUpdate{Price: &price})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))

	plans, err := f.svc.Plans.List(f.db)
	require.NoError(t, err)
	assert.Len(t, plans, 1)

	c := f.customer(t, "ana")
	_, err = f.svc.Customers.AddPlan(f.db, c.ID, p.ID, models.PlanStatusActive)
	require.NoError(t, err)

	require.NoError(t, f.svc.Plans.Delete(f.db, p.ID))
	_, err = f.svc.Plans.Get(f.db, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	links, err := f.svc.Customers.ListPlans(f.db, c.ID, models.PlanStatusActive)
	require.NoError(t, err)
	assert.Empty(t, links)

	assert.ErrorIs(t, f.svc.Plans.Delete(f.db, p.ID), ErrNotFound)
}

func TestTransaction_CRUD(t *testing.T) {
	f := newFixture(t)
	c := f.customer(t, "ana")

	amount := decimal.NewFromInt(10)
	_, err := f.svc.Transactions.Create(f.db, models.TransactionCreate{Amount: &amount})
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := f.svc.Transactions.Create(f.db, models.TransactionCreate{Amount: &amount, CustomerID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, c.ID, created.CustomerID)

	updated, err := f.svc.Transactions.Update(f.db, created.ID, models.TransactionUpdate{Description: strPtr("refund")})
	require.NoError(t, err)
	assert.Equal(t, "refund", updated.Description)
	assert.True(t, amount.Equal(updated.Amount))

	all, err := f.svc.Transactions.List(f.db)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, f.svc.Transactions.Delete(f.db, created.ID))
	_, err = f.svc.Transactions.Get(f.db, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_PersistenceFailureIsOpaque(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.DropTable(&models.Customer{}).Error)

	_, err := f.svc.Customers.Create(f.db, models.CustomerCreate{Name: "Ana"})
	assert.Equal(t, ErrInternal, err)

	entry := f.errHook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Error creating customer", entry.Message)
	assert.Contains(t, entry.Data["payload"], `"name":"Ana"`)
	assert.NotNil(t, entry.Data[logrus.ErrorKey])
}
