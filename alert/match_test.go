package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/utils"
)

func boolPtr(b bool) *bool {
	return &b
}

func acceptingListing() schema.Listing {
	return schema.Listing{
		ID:              primitive.NewObjectID(),
		Kind:            schema.KindClinic,
		Name:            "Clinique Sainte-Famille",
		Location:        schema.NewPoint(-73.5673, 45.5017),
		AcceptingStatus: schema.StatusAccepting,
		Languages:       []string{"fr", "en"},
		AccessibilityFeatures: []string{
			schema.FeatureWheelchairAccess,
		},
	}
}

func TestMatchWithinRadius(t *testing.T) {
	sub := schema.AlertSubscription{
		Label:    "home",
		Location: schema.NewPoint(-73.6, 45.52),
		RadiusKm: 25,
	}

	distance, ok := MatchSubscription(acceptingListing(), sub)
	assert.True(t, ok)
	assert.Greater(t, distance, 0.0)
}

func TestMatchRadiusBoundaryIsInclusive(t *testing.T) {
	listing := acceptingListing()
	sub := schema.AlertSubscription{
		Label:    "exact",
		Location: schema.NewPoint(-73.9, 45.6),
	}

	exact := utils.Distance(*sub.Coordinates(), *listing.Coordinates())

	sub.RadiusKm = exact
	_, ok := MatchSubscription(listing, sub)
	assert.True(t, ok, "a listing exactly on the radius boundary matches")

	sub.RadiusKm = exact - 0.001
	_, ok = MatchSubscription(listing, sub)
	assert.False(t, ok)
}

func TestMatchDefaultRadius(t *testing.T) {
	// roughly 16 km away, no radius set on the subscription
	sub := schema.AlertSubscription{
		Label:    "laval",
		Location: schema.NewPoint(-73.7124, 45.6066),
	}

	_, ok := MatchSubscription(acceptingListing(), sub)
	assert.True(t, ok)
}

func TestMatchSkipsSubscriptionWithoutCoordinates(t *testing.T) {
	sub := schema.AlertSubscription{
		Label:    "never geocoded",
		RadiusKm: 25,
	}

	_, ok := MatchSubscription(acceptingListing(), sub)
	assert.False(t, ok)
}

func TestMatchFiltersIgnoredWhenNotApplied(t *testing.T) {
	sub := schema.AlertSubscription{
		Label:             "loose",
		Location:          schema.NewPoint(-73.6, 45.52),
		RadiusKm:          25,
		ApplyFilters:      false,
		Languages:         []string{"de"},
		AccessibleParking: boolPtr(true),
	}

	_, ok := MatchSubscription(acceptingListing(), sub)
	assert.True(t, ok, "filters only apply when apply_filters is set")
}

func TestMatchLanguageFilter(t *testing.T) {
	sub := schema.AlertSubscription{
		Label:        "french only",
		Location:     schema.NewPoint(-73.6, 45.52),
		RadiusKm:     25,
		ApplyFilters: true,
		Languages:    []string{"FR"},
	}

	_, ok := MatchSubscription(acceptingListing(), sub)
	assert.True(t, ok, "language comparison is case-insensitive")

	sub.Languages = []string{"de"}
	_, ok = MatchSubscription(acceptingListing(), sub)
	assert.False(t, ok)
}

func TestMatchAccessibilityFilters(t *testing.T) {
	sub := schema.AlertSubscription{
		Label:                "wheelchair",
		Location:             schema.NewPoint(-73.6, 45.52),
		RadiusKm:             25,
		ApplyFilters:         true,
		WheelchairAccessible: boolPtr(true),
	}

	_, ok := MatchSubscription(acceptingListing(), sub)
	assert.True(t, ok)

	sub.AccessibleParking = boolPtr(true)
	_, ok = MatchSubscription(acceptingListing(), sub)
	assert.False(t, ok, "the listing declares no accessible parking")

	// a false filter value does not require the feature
	sub.AccessibleParking = boolPtr(false)
	_, ok = MatchSubscription(acceptingListing(), sub)
	assert.True(t, ok)
}

func TestFirstMatchStopsAtFirstMatching(t *testing.T) {
	listing := acceptingListing()

	far := schema.AlertSubscription{
		ID:       primitive.NewObjectID(),
		Label:    "cottage",
		Location: schema.NewPoint(-79.3832, 43.6532),
		RadiusKm: 25,
	}
	near := schema.AlertSubscription{
		ID:       primitive.NewObjectID(),
		Label:    "home",
		Location: schema.NewPoint(-73.6, 45.52),
		RadiusKm: 25,
	}
	alsoNear := schema.AlertSubscription{
		ID:       primitive.NewObjectID(),
		Label:    "office",
		Location: schema.NewPoint(-73.57, 45.5),
		RadiusKm: 25,
	}

	match, ok := FirstMatch(listing, []schema.AlertSubscription{far, near, alsoNear})
	assert.True(t, ok)
	assert.Equal(t, near.ID, match.Subscription.ID)
	assert.Equal(t, "home", match.Subscription.Label)
}

func TestFirstMatchNoMatches(t *testing.T) {
	listing := acceptingListing()

	match, ok := FirstMatch(listing, []schema.AlertSubscription{
		{
			Label:    "cottage",
			Location: schema.NewPoint(-79.3832, 43.6532),
			RadiusKm: 25,
		},
	})
	assert.False(t, ok)
	assert.Nil(t, match)

	match, ok = FirstMatch(listing, nil)
	assert.False(t, ok)
	assert.Nil(t, match)
}
