// Package alert holds the subscription matching rules applied when a
// listing flips to accepting.
package alert

import (
	"strings"

	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/utils"
)

// Match pairs a matched subscription with the computed distance to the
// listing that triggered it.
type Match struct {
	Subscription schema.AlertSubscription
	DistanceKm   float64
}

// FirstMatch walks a subscriber's subscriptions in the given order and
// returns the first one matching the listing. Callers pass subscriptions
// sorted by creation time so "first" is reproducible. A single subscriber
// never gets more than one match per listing event.
func FirstMatch(listing schema.Listing, subscriptions []schema.AlertSubscription) (*Match, bool) {
	for _, sub := range subscriptions {
		if distance, ok := MatchSubscription(listing, sub); ok {
			return &Match{Subscription: sub, DistanceKm: distance}, true
		}
	}
	return nil, false
}

// MatchSubscription decides whether one subscription matches the listing
// and returns the distance between them. Subscriptions without geocoded
// coordinates never match. The radius check is inclusive.
func MatchSubscription(listing schema.Listing, sub schema.AlertSubscription) (float64, bool) {
	center := sub.Coordinates()
	if center == nil {
		return 0, false
	}

	target := listing.Coordinates()
	if target == nil {
		return 0, false
	}

	distance := utils.Distance(*center, *target)
	if distance > sub.Radius() {
		return distance, false
	}

	if sub.ApplyFilters && !matchesFilters(listing, sub) {
		return distance, false
	}

	return distance, true
}

func matchesFilters(listing schema.Listing, sub schema.AlertSubscription) bool {
	if len(sub.Languages) > 0 && !languagesIntersect(sub.Languages, listing.Languages) {
		return false
	}

	if sub.WheelchairAccessible != nil && *sub.WheelchairAccessible &&
		!listing.HasFeature(schema.FeatureWheelchairAccess) {
		return false
	}

	if sub.AccessibleParking != nil && *sub.AccessibleParking &&
		!listing.HasFeature(schema.FeatureAccessibleParking) {
		return false
	}

	return true
}

func languagesIntersect(wanted, offered []string) bool {
	for _, w := range wanted {
		for _, o := range offered {
			if strings.EqualFold(w, o) {
				return true
			}
		}
	}
	return false
}
