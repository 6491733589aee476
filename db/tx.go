package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
)

var ErrNoDatabase = errors.New("db não configurado no contexto")

// WithTx begins a transaction, hands it to fn and commits when fn returns nil.
// Any error or panic from fn rolls the transaction back; the panic is
// re-raised after the rollback.
func WithTx(ctx context.Context, database *gorm.DB, fn func(tx *gorm.DB) error) (err error) {
	tx := database.BeginTx(ctx, nil)
	if tx.Error != nil {
		return fmt.Errorf("begin: %w", tx.Error)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}
