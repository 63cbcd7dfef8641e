package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexListingCollection())
	panicIfError(m.IndexPendingUpdateCollection())
	panicIfError(m.IndexCommunityReportCollection())
	panicIfError(m.IndexAlertSubscriptionCollection())
}

func (m *MongoDBIndexer) IndexListingCollection() error {
	return m.createIndex(ListingCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexPendingUpdateCollection() error {
	if err := m.createIndex(PendingUpdateCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "listing_id", Value: 1},
			{Key: "proposed_status", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(PendingUpdateCollection, mongo.IndexModel{
		Keys: bson.M{
			"listing_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexCommunityReportCollection() error {
	return m.createIndex(CommunityReportCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "listing_id", Value: 1},
			{Key: "ts", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexAlertSubscriptionCollection() error {
	return m.createIndex(AlertSubscriptionCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_number", Value: 1},
			{Key: "created_at", Value: 1},
		},
	})
}
