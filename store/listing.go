package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/junianwoo/fyd-sub001/schema"
)

var (
	ErrListingNotFound = fmt.Errorf("listing not found")
)

// ListingSearchParams narrows a radius search over listings. Status and
// attribute filters are optional.
type ListingSearchParams struct {
	Center           schema.Location
	RadiusKm         float64
	Status           schema.AcceptingStatus
	Language         string
	WheelchairAccess bool
	ParkingAccess    bool
	Limit            int64
}

type Listing interface {
	GetListing(listingID primitive.ObjectID) (*schema.Listing, error)
	CreateListings(listings []schema.Listing) (int, error)
	SearchListings(params ListingSearchParams) ([]schema.Listing, error)
}

// GetListing finds a listing by its ID
func (m *mongoDB) GetListing(listingID primitive.ObjectID) (*schema.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ListingCollection)

	var listing schema.Listing
	if err := c.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	return &listing, nil
}

// CreateListings batch-inserts imported listing records. Records without an
// accepting status come in as unknown.
func (m *mongoDB) CreateListings(listings []schema.Listing) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	data := make([]interface{}, len(listings))
	for i, l := range listings {
		if !l.AcceptingStatus.Valid() {
			l.AcceptingStatus = schema.StatusUnknown
		}
		if l.StatusVerifiedBy == "" {
			l.StatusVerifiedBy = schema.VerifiedBySelf
		}
		if l.ID.IsZero() {
			l.ID = primitive.NewObjectID()
		}
		data[i] = l
	}

	c := m.client.Database(m.database).Collection(schema.ListingCollection)
	opts := options.InsertMany().SetOrdered(false)
	res, err := c.InsertMany(ctx, data, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("insert listings")
		return 0, err
	}

	return len(res.InsertedIDs), nil
}

// SearchListings returns listings around a center point ordered by
// proximity. The radius is converted to meters for the 2dsphere query.
func (m *mongoDB) SearchListings(params ListingSearchParams) ([]schema.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	radiusKm := params.RadiusKm
	if radiusKm <= 0 {
		radiusKm = schema.DefaultAlertRadiusKm
	}

	query := bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{params.Center.Longitude, params.Center.Latitude},
				},
				"$maxDistance": radiusKm * 1000,
			},
		},
	}

	if params.Status != "" {
		query["accepting_status"] = params.Status
	}
	if params.Language != "" {
		query["languages"] = params.Language
	}
	features := make([]string, 0)
	if params.WheelchairAccess {
		features = append(features, schema.FeatureWheelchairAccess)
	}
	if params.ParkingAccess {
		features = append(features, schema.FeatureAccessibleParking)
	}
	if len(features) > 0 {
		query["accessibility_features"] = bson.M{"$all": features}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	c := m.client.Database(m.database).Collection(schema.ListingCollection)
	cur, err := c.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby listings with error: %s", err)
		return nil, err
	}

	listings := make([]schema.Listing, 0)
	for cur.Next(ctx) {
		var l schema.Listing
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, nil
}
