package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/junianwoo/fyd-sub001/schema"
)

var (
	ErrApplicationExists   = fmt.Errorf("an application has already been submitted for this account")
	ErrApplicationNotFound = fmt.Errorf("application not found")
	ErrApplicationReviewed = fmt.Errorf("application has already been reviewed")
)

// CreateAssistedAccessApplication files a fee-waiver application. One
// application per account; a resubmission is rejected.
func (s *FYDStore) CreateAssistedAccessApplication(accountNumber, reason string) (*schema.AssistedAccessApplication, error) {
	application := schema.AssistedAccessApplication{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Reason:        reason,
		State:         schema.AssistancePending,
	}

	if err := s.ormDB.Create(&application).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrApplicationExists
		}
		return nil, err
	}

	return &application, nil
}

func (s *FYDStore) GetAssistedAccessApplication(accountNumber string) (*schema.AssistedAccessApplication, error) {
	var application schema.AssistedAccessApplication
	err := s.ormDB.Where("account_number = ?", accountNumber).First(&application).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

// ReviewAssistedAccessApplication settles a pending application. Approval
// also flips the account plan to assisted access, inside one transaction.
func (s *FYDStore) ReviewAssistedAccessApplication(applicationID string, approve bool, reviewer string) error {
	state := schema.AssistanceDeclined
	if approve {
		state = schema.AssistanceApproved
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var application schema.AssistedAccessApplication
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", applicationID).First(&application).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return ErrApplicationNotFound
		}
		return err
	}

	if application.State != schema.AssistancePending {
		tx.Rollback()
		return ErrApplicationReviewed
	}

	err := tx.Model(schema.AssistedAccessApplication{}).
		Where("id = ?", applicationID).
		Updates(map[string]interface{}{
			"state":       state,
			"reviewed_by": reviewer,
		}).Error
	if err != nil {
		tx.Rollback()
		return err
	}

	if approve {
		result := tx.Model(schema.Account{}).
			Where("account_number = ?", application.AccountNumber).
			Update("plan", schema.PlanAssistedAccess)
		if result.Error != nil {
			tx.Rollback()
			return result.Error
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			return ErrAccountNotFound
		}
	}

	return tx.Commit().Error
}
