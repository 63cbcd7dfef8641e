package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/junianwoo/fyd-sub001/schema"
)

type SubscriptionTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewSubscriptionTestSuite(connURI, dbName string) *SubscriptionTestSuite {
	return &SubscriptionTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *SubscriptionTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.testDatabase.Collection(schema.AlertSubscriptionCollection).
		Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *SubscriptionTestSuite) TestCreateAndListSubscriptions() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	now := time.Now().Unix()

	first, err := store.CreateSubscription(schema.AlertSubscription{
		AccountNumber: "acct-order",
		Label:         "home",
		Location:      schema.NewPoint(-73.6, 45.52),
		RadiusKm:      10,
		Active:        true,
		CreatedAt:     now - 10,
	})
	s.NoError(err)
	s.False(first.ID.IsZero())

	second, err := store.CreateSubscription(schema.AlertSubscription{
		AccountNumber: "acct-order",
		Label:         "office",
		Location:      schema.NewPoint(-73.57, 45.5),
		Active:        false,
		CreatedAt:     now,
	})
	s.NoError(err)

	subscriptions, err := store.ListSubscriptions("acct-order")
	s.NoError(err)
	s.Len(subscriptions, 2)

	// oldest first, so the alert engine's first-match is reproducible
	s.Equal(first.ID, subscriptions[0].ID)
	s.Equal(second.ID, subscriptions[1].ID)

	active, err := store.ListActiveSubscriptions("acct-order")
	s.NoError(err)
	s.Len(active, 1)
	s.Equal("home", active[0].Label)

	none, err := store.ListSubscriptions("acct-unknown")
	s.NoError(err)
	s.Len(none, 0)
}

func (s *SubscriptionTestSuite) TestGetSubscriptionScopedToAccount() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateSubscription(schema.AlertSubscription{
		AccountNumber: "acct-owner",
		Label:         "home",
		Location:      schema.NewPoint(-73.6, 45.52),
		Active:        true,
	})
	s.NoError(err)

	got, err := store.GetSubscription("acct-owner", created.ID)
	s.NoError(err)
	s.Equal("home", got.Label)

	// another account cannot see it
	_, err = store.GetSubscription("acct-other", created.ID)
	s.Equal(ErrSubscriptionNotFound, err)
}

func (s *SubscriptionTestSuite) TestUpdateSubscription() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateSubscription(schema.AlertSubscription{
		AccountNumber: "acct-update",
		Label:         "home",
		Location:      schema.NewPoint(-73.6, 45.52),
		RadiusKm:      10,
		Active:        true,
	})
	s.NoError(err)

	label := "chalet"
	radius := 50.0
	active := false
	err = store.UpdateSubscription("acct-update", created.ID, SubscriptionUpdateParams{
		Label:    &label,
		RadiusKm: &radius,
		Active:   &active,
		Location: &schema.Location{Latitude: 46.8, Longitude: -71.2},
	})
	s.NoError(err)

	updated, err := store.GetSubscription("acct-update", created.ID)
	s.NoError(err)
	s.Equal("chalet", updated.Label)
	s.Equal(50.0, updated.RadiusKm)
	s.False(updated.Active)
	s.Equal(46.8, updated.Coordinates().Latitude)

	// updates are scoped to the owner
	err = store.UpdateSubscription("acct-other", created.ID, SubscriptionUpdateParams{Label: &label})
	s.Equal(ErrSubscriptionNotFound, err)
}

func (s *SubscriptionTestSuite) TestDeleteSubscription() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateSubscription(schema.AlertSubscription{
		AccountNumber: "acct-delete",
		Label:         "home",
		Location:      schema.NewPoint(-73.6, 45.52),
		Active:        true,
	})
	s.NoError(err)

	s.Equal(ErrSubscriptionNotFound, store.DeleteSubscription("acct-other", created.ID))

	s.NoError(store.DeleteSubscription("acct-delete", created.ID))

	_, err = store.GetSubscription("acct-delete", created.ID)
	s.Equal(ErrSubscriptionNotFound, err)

	s.Equal(ErrSubscriptionNotFound, store.DeleteSubscription("acct-delete", primitive.NewObjectID()))
}

func TestSubscriptionTestSuite(t *testing.T) {
	suite.Run(t, NewSubscriptionTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
