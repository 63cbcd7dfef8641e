package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PendingUpdateCollection = "pending_updates"
)

// PendingUpdate is an in-flight tally of community reports toward one
// proposed accepting status for one listing. A listing may carry one tally
// per proposed status at the same time. Every tally of a listing is wiped
// the moment any one of them reaches the consensus threshold.
type PendingUpdate struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ListingID      primitive.ObjectID `json:"listing_id" bson:"listing_id"`
	ProposedStatus AcceptingStatus    `json:"proposed_status" bson:"proposed_status"`
	Count          int64              `json:"count" bson:"count"`

	// ReporterFingerprints holds the dedup tokens already counted toward
	// this proposed status. The set is scoped to the (listing, status)
	// pair, not to the listing.
	ReporterFingerprints []string `json:"-" bson:"reporter_fingerprints"`

	CreatedAt int64 `json:"created_at" bson:"created_at"`
	UpdatedAt int64 `json:"updated_at" bson:"updated_at"`
}

// HasFingerprint reports whether fp was already counted toward this tally
func (p PendingUpdate) HasFingerprint(fp string) bool {
	if fp == "" {
		return false
	}
	for _, f := range p.ReporterFingerprints {
		if f == fp {
			return true
		}
	}
	return false
}
