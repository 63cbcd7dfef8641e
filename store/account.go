package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/junianwoo/fyd-sub001/schema"
)

var (
	ErrEmailTaken      = fmt.Errorf("this email has already been registered")
	ErrInvalidAuth     = fmt.Errorf("invalid account credentials")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// CreateAccount registers a subscriber into the alert service. New accounts
// start on the free plan; eligibility for alerts comes later.
func (s *FYDStore) CreateAccount(email, preferredLanguage string) (*schema.Account, error) {
	if preferredLanguage == "" {
		preferredLanguage = "en"
	}

	a := schema.Account{
		AccountNumber:     uuid.New().String(),
		Email:             email,
		AuthToken:         uuid.New().String(),
		PreferredLanguage: preferredLanguage,
		Plan:              schema.PlanNone,
		State:             schema.AccountActive,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *FYDStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// AuthenticateAccount checks the long-lived auth token handed out at
// registration before a JWT is issued
func (s *FYDStore) AuthenticateAccount(accountNumber, authToken string) (*schema.Account, error) {
	var a schema.Account
	err := s.ormDB.
		Where("account_number = ? AND auth_token = ?", accountNumber, authToken).
		First(&a).Error
	if err != nil {
		return nil, ErrInvalidAuth
	}
	return &a, nil
}

// UpdateAccountPlan switches the alert-service plan of an account
func (s *FYDStore) UpdateAccountPlan(accountNumber string, plan schema.AccountPlan) error {
	result := s.ormDB.Model(schema.Account{}).
		Where("account_number = ?", accountNumber).
		Update("plan", plan)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ListEligibleAlertAccounts returns every active account whose plan grants
// the alert service, paid or assisted access alike
func (s *FYDStore) ListEligibleAlertAccounts() ([]schema.Account, error) {
	accounts := []schema.Account{}
	err := s.ormDB.
		Where("state = ? AND plan IN (?)", schema.AccountActive,
			[]schema.AccountPlan{schema.PlanAlertsPaid, schema.PlanAssistedAccess}).
		Order("account_number").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
