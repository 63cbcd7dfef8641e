package schema

import (
	"time"
)

// AssistedAccessState is the review state of a fee-waiver application
type AssistedAccessState string

const (
	AssistancePending  AssistedAccessState = "pending"
	AssistanceApproved AssistedAccessState = "approved"
	AssistanceDeclined AssistedAccessState = "declined"
)

// AssistedAccessApplication is a request to waive the alert-service fee.
// An approved application switches the account plan to assisted_access.
type AssistedAccessApplication struct {
	ID            string              `json:"id" gorm:"type:uuid;primary_key"`
	AccountNumber string              `json:"account_number" gorm:"unique_index;not null"`
	Reason        string              `json:"reason"`
	State         AssistedAccessState `json:"state" gorm:"not null;default:'pending'"`
	ReviewedBy    string              `json:"-"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
