package services

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// find loads the row with id into dst. A missing row becomes a NotFoundError
// for entity, any other failure is logged and reported as ErrInternal.
func find(tx *gorm.DB, errLog logrus.FieldLogger, entity string, dst interface{}, id int64) error {
	if id <= 0 {
		return notFound(entity)
	}
	err := tx.First(dst, id).Error
	switch {
	case err == nil:
		return nil
	case gorm.IsRecordNotFoundError(err):
		return notFound(entity)
	default:
		errLog.WithError(err).WithField("id", id).Errorf("Error reading %s", entity)
		return ErrInternal
	}
}

// dump renders v as JSON for the diagnostic logs.
func dump(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
