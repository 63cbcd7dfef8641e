package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/junianwoo/fyd-sub001/schema"
)

var (
	ErrSubscriptionNotFound = fmt.Errorf("subscription not found")
)

// SubscriptionUpdateParams carries partial updates of a subscription.
// Nil fields stay untouched.
type SubscriptionUpdateParams struct {
	Label                *string
	Location             *schema.Location
	RadiusKm             *float64
	Active               *bool
	ApplyFilters         *bool
	Languages            *[]string
	WheelchairAccessible *bool
	AccessibleParking    *bool
}

// AlertSubscriptionStore - operations on subscribers' monitored areas
type AlertSubscriptionStore interface {
	CreateSubscription(subscription schema.AlertSubscription) (*schema.AlertSubscription, error)
	GetSubscription(accountNumber string, subscriptionID primitive.ObjectID) (*schema.AlertSubscription, error)
	ListSubscriptions(accountNumber string) ([]schema.AlertSubscription, error)
	ListActiveSubscriptions(accountNumber string) ([]schema.AlertSubscription, error)
	UpdateSubscription(accountNumber string, subscriptionID primitive.ObjectID, params SubscriptionUpdateParams) error
	DeleteSubscription(accountNumber string, subscriptionID primitive.ObjectID) error
}

func (m *mongoDB) CreateSubscription(subscription schema.AlertSubscription) (*schema.AlertSubscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if subscription.ID.IsZero() {
		subscription.ID = primitive.NewObjectID()
	}
	if subscription.CreatedAt == 0 {
		subscription.CreatedAt = time.Now().Unix()
	}

	c := m.client.Database(m.database).Collection(schema.AlertSubscriptionCollection)
	if _, err := c.InsertOne(ctx, subscription); err != nil {
		return nil, err
	}

	return &subscription, nil
}

func (m *mongoDB) GetSubscription(accountNumber string, subscriptionID primitive.ObjectID) (*schema.AlertSubscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AlertSubscriptionCollection)

	var subscription schema.AlertSubscription
	query := bson.M{
		"_id":            subscriptionID,
		"account_number": accountNumber,
	}
	if err := c.FindOne(ctx, query).Decode(&subscription); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	return &subscription, nil
}

func (m *mongoDB) ListSubscriptions(accountNumber string) ([]schema.AlertSubscription, error) {
	return m.listSubscriptions(bson.M{"account_number": accountNumber})
}

// ListActiveSubscriptions returns a subscriber's active subscriptions
// ordered by creation time then ID. The alert engine's first-match rule
// depends on this order being stable.
func (m *mongoDB) ListActiveSubscriptions(accountNumber string) ([]schema.AlertSubscription, error) {
	return m.listSubscriptions(bson.M{
		"account_number": accountNumber,
		"active":         true,
	})
}

func (m *mongoDB) listSubscriptions(query bson.M) ([]schema.AlertSubscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AlertSubscriptionCollection)
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	subscriptions := make([]schema.AlertSubscription, 0)
	for cur.Next(ctx) {
		var s schema.AlertSubscription
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, s)
	}

	return subscriptions, nil
}

func (m *mongoDB) UpdateSubscription(accountNumber string, subscriptionID primitive.ObjectID, params SubscriptionUpdateParams) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	set := bson.M{}
	if params.Label != nil {
		set["label"] = *params.Label
	}
	if params.Location != nil {
		set["location"] = schema.NewPoint(params.Location.Longitude, params.Location.Latitude)
	}
	if params.RadiusKm != nil {
		set["radius_km"] = *params.RadiusKm
	}
	if params.Active != nil {
		set["active"] = *params.Active
	}
	if params.ApplyFilters != nil {
		set["apply_filters"] = *params.ApplyFilters
	}
	if params.Languages != nil {
		set["languages"] = *params.Languages
	}
	if params.WheelchairAccessible != nil {
		set["wheelchair_accessible"] = *params.WheelchairAccessible
	}
	if params.AccessibleParking != nil {
		set["accessible_parking"] = *params.AccessibleParking
	}
	if len(set) == 0 {
		return nil
	}

	c := m.client.Database(m.database).Collection(schema.AlertSubscriptionCollection)
	query := bson.M{
		"_id":            subscriptionID,
		"account_number": accountNumber,
	}
	result, err := c.UpdateOne(ctx, query, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

func (m *mongoDB) DeleteSubscription(accountNumber string, subscriptionID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AlertSubscriptionCollection)
	query := bson.M{
		"_id":            subscriptionID,
		"account_number": accountNumber,
	}
	result, err := c.DeleteOne(ctx, query)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
