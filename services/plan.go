package services

import (
	"apptransaction/logging"
	"apptransaction/models"

	"github.com/jinzhu/gorm"
)

const planEntity = "Plan"

type PlanService struct {
	log *logging.Pair
}

func NewPlanService(log *logging.Pair) *PlanService {
	return &PlanService{log: log}
}

func (s *PlanService) Create(tx *gorm.DB, in models.PlanCreate) (*models.Plan, error) {
	plan := in.Plan()
	if err := tx.Create(&plan).Error; err != nil {
		s.log.Error.WithError(err).WithField("payload", dump(in)).Error("Error creating plan")
		return nil, ErrInternal
	}
	s.log.Success.WithField("plan", dump(plan)).Info("Plan created")
	return &plan, nil
}

func (s *PlanService) Get(tx *gorm.DB, id int64) (*models.Plan, error) {
	var plan models.Plan
	if err := find(tx, s.log.Error, planEntity, &plan, id); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) Update(tx *gorm.DB, id int64, in models.PlanUpdate) (*models.Plan, error) {
	plan, err := s.Get(tx, id)
	if err != nil {
		return nil, err
	}

	fields := in.Fields()
	if len(fields) == 0 {
		return plan, nil
	}
	if err := tx.Model(plan).Updates(fields).Error; err != nil {
		s.log.Error.WithError(err).WithField("id", id).WithField("fields", dump(fields)).Error("Error updating plan")
		return nil, ErrInternal
	}

	updated, err := s.Get(tx, id)
	if err != nil {
		return nil, err
	}
	s.log.Success.WithField("plan", dump(updated)).Info("Plan updated")
	return updated, nil
}

// Delete removes the plan and every customer link to it.
func (s *PlanService) Delete(tx *gorm.DB, id int64) error {
	plan, err := s.Get(tx, id)
	if err != nil {
		return err
	}
	if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.CustomerPlan{}).Error; err != nil {
		s.log.Error.WithError(err).WithField("id", id).Error("Error deleting plan links")
		return ErrInternal
	}
	if err := tx.Delete(plan).Error; err != nil {
		s.log.Error.WithError(err).WithField("id", id).Error("Error deleting plan")
		return ErrInternal
	}
	s.log.Success.WithField("id", id).Info("Plan deleted")
	return nil
}

func (s *PlanService) List(tx *gorm.DB) ([]models.Plan, error) {
	plans := []models.Plan{}
	if err := tx.Order("id asc").Find(&plans).Error; err != nil {
		s.log.Error.WithError(err).Error("Error listing plans")
		return nil, ErrInternal
	}
	return plans, nil
}
