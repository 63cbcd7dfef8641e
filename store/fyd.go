package store

import (
	"github.com/jinzhu/gorm"

	"github.com/junianwoo/fyd-sub001/schema"
)

// FindYourDoctor main datastore
type FYDCore interface {
	Ping() error

	// Account
	CreateAccount(email, preferredLanguage string) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	AuthenticateAccount(accountNumber, authToken string) (*schema.Account, error)
	UpdateAccountPlan(accountNumber string, plan schema.AccountPlan) error
	ListEligibleAlertAccounts() ([]schema.Account, error)

	// Assisted access
	CreateAssistedAccessApplication(accountNumber, reason string) (*schema.AssistedAccessApplication, error)
	GetAssistedAccessApplication(accountNumber string) (*schema.AssistedAccessApplication, error)
	ReviewAssistedAccessApplication(applicationID string, approve bool, reviewer string) error
}

// FYDStore is an implementation of FYDCore
type FYDStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewFYDStore(ormDB *gorm.DB, mongo MongoStore) *FYDStore {
	return &FYDStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *FYDStore) Ping() error {
	return s.ormDB.DB().Ping()
}
