package schema

import (
	"time"
)

// AccountPlan is the alert-service plan of a subscriber account
type AccountPlan string

const (
	PlanNone           AccountPlan = "none"
	PlanAlertsPaid     AccountPlan = "alerts_paid"
	PlanAssistedAccess AccountPlan = "assisted_access"
)

// AccountState is the lifecycle state of a subscriber account
type AccountState string

const (
	AccountActive    AccountState = "active"
	AccountSuspended AccountState = "suspended"
)

// Account is a subscriber of the alert service. Payment handling lives
// outside this service; only the resulting plan is recorded here.
type Account struct {
	AccountNumber     string       `json:"account_number" gorm:"primary_key"`
	Email             string       `json:"email" gorm:"unique_index;not null"`
	AuthToken         string       `json:"-" gorm:"not null"`
	PreferredLanguage string       `json:"preferred_language" gorm:"not null;default:'en'"`
	Plan              AccountPlan  `json:"plan" gorm:"not null;default:'none'"`
	State             AccountState `json:"state" gorm:"not null;default:'active'"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// EligibleForAlerts reports whether the account may receive alert emails
func (a Account) EligibleForAlerts() bool {
	if a.State != AccountActive {
		return false
	}
	return a.Plan == PlanAlertsPaid || a.Plan == PlanAssistedAccess
}
