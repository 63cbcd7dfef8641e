package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CommunityReportCollection = "community_reports"
)

// CommunityReport is one row of the append-only audit trail. Every report
// received is logged here regardless of whether it was deduplicated or
// triggered a consensus commit. The trail is never consulted by the
// decision logic.
type CommunityReport struct {
	ListingID           primitive.ObjectID `json:"listing_id" bson:"listing_id"`
	ReportedStatus      AcceptingStatus    `json:"reported_status" bson:"reported_status"`
	ReporterFingerprint string             `json:"-" bson:"reporter_fingerprint,omitempty"`
	Details             string             `json:"details,omitempty" bson:"details,omitempty"`
	Timestamp           int64              `json:"ts" bson:"ts"`
}
