package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AlertSubscriptionCollection = "alert_subscriptions"
)

// DefaultAlertRadiusKm applies when a subscription does not set its own radius
const DefaultAlertRadiusKm = 25.0

// AlertSubscription is a monitored area of one subscriber. A listing flipping
// to accepting inside the radius produces at most one alert for the
// subscriber, no matter how many of their subscriptions match.
type AlertSubscription struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AccountNumber string             `json:"-" bson:"account_number"`

	// Label is the subscriber-facing name of the monitored area, echoed
	// in alert emails.
	Label    string   `json:"label" bson:"label"`
	Location *GeoJSON `json:"location" bson:"location,omitempty"`
	RadiusKm float64  `json:"radius_km" bson:"radius_km"`
	Active   bool     `json:"active" bson:"active"`

	// ApplyFilters gates the attribute filters below. When false any
	// accepting listing within the radius matches.
	ApplyFilters         bool     `json:"apply_filters" bson:"apply_filters"`
	Languages            []string `json:"languages,omitempty" bson:"languages,omitempty"`
	WheelchairAccessible *bool    `json:"wheelchair_accessible,omitempty" bson:"wheelchair_accessible,omitempty"`
	AccessibleParking    *bool    `json:"accessible_parking,omitempty" bson:"accessible_parking,omitempty"`

	CreatedAt int64 `json:"created_at" bson:"created_at"`
}

// Radius returns the matching radius in kilometers, falling back to the
// service default when unset
func (s AlertSubscription) Radius() float64 {
	if s.RadiusKm <= 0 {
		return DefaultAlertRadiusKm
	}
	return s.RadiusKm
}

// Coordinates returns the geocoded center of the monitored area, nil when
// the subscription was never geocoded
func (s AlertSubscription) Coordinates() *Location {
	return s.Location.ToLocation()
}
