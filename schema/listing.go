package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ListingCollection = "listings"
)

// AcceptingStatus is the authoritative accepting-new-patients state of a listing
type AcceptingStatus string

const (
	StatusAccepting    AcceptingStatus = "accepting"
	StatusNotAccepting AcceptingStatus = "not_accepting"
	StatusWaitlist     AcceptingStatus = "waitlist"
	StatusUnknown      AcceptingStatus = "unknown"
)

// Valid reports whether s is one of the known accepting statuses
func (s AcceptingStatus) Valid() bool {
	switch s {
	case StatusAccepting, StatusNotAccepting, StatusWaitlist, StatusUnknown:
		return true
	}
	return false
}

// StatusProvenance tags who last set the accepting status of a listing
type StatusProvenance string

const (
	VerifiedBySelf      StatusProvenance = "self"
	VerifiedByCommunity StatusProvenance = "community"
)

type ListingKind string

const (
	KindClinic ListingKind = "clinic"
	KindDoctor ListingKind = "doctor"
)

const (
	FeatureWheelchairAccess  = "wheelchair_access"
	FeatureAccessibleParking = "accessible_parking"
)

// Listing is a clinic or doctor record. The accepting status is either
// self-reported by the listing or flipped by community consensus.
type Listing struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Kind                  ListingKind        `json:"kind" bson:"kind"`
	Name                  string             `json:"name" bson:"name"`
	Address               string             `json:"address" bson:"address"`
	Phone                 string             `json:"phone" bson:"phone"`
	Location              *GeoJSON           `json:"location" bson:"location"`
	AcceptingStatus       AcceptingStatus    `json:"accepting_status" bson:"accepting_status"`
	StatusVerifiedBy      StatusProvenance   `json:"status_verified_by" bson:"status_verified_by"`
	StatusLastUpdatedAt   int64              `json:"status_ts" bson:"status_ts"`
	CommunityReportCount  int64              `json:"community_report_count" bson:"community_report_count"`
	Languages             []string           `json:"languages" bson:"languages"`
	AccessibilityFeatures []string           `json:"accessibility_features" bson:"accessibility_features"`
}

// HasFeature reports whether the listing declares an accessibility feature
func (l Listing) HasFeature(feature string) bool {
	for _, f := range l.AccessibilityFeatures {
		if f == feature {
			return true
		}
	}
	return false
}

// Coordinates returns the listing location as a lat/lng pair, nil if unset
func (l Listing) Coordinates() *Location {
	return l.Location.ToLocation()
}
