package models

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&Plan{},
		&CustomerPlan{},
		&Transaction{},
	}
}
