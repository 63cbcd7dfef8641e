package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/junianwoo/fyd-sub001/schema"
)

// CommunityReportLog - append-only audit trail of received reports
type CommunityReportLog interface {
	AppendCommunityReport(report schema.CommunityReport) error
	ListCommunityReports(listingID primitive.ObjectID, limit int64) ([]schema.CommunityReport, error)
}

func (m *mongoDB) AppendCommunityReport(report schema.CommunityReport) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CommunityReportCollection)
	_, err := c.InsertOne(ctx, report)
	return err
}

func (m *mongoDB) ListCommunityReports(listingID primitive.ObjectID, limit int64) ([]schema.CommunityReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}

	c := m.client.Database(m.database).Collection(schema.CommunityReportCollection)
	opts := options.Find().SetSort(bson.M{"ts": -1}).SetLimit(limit)
	cur, err := c.Find(ctx, bson.M{"listing_id": listingID}, opts)
	if err != nil {
		return nil, err
	}

	reports := make([]schema.CommunityReport, 0)
	for cur.Next(ctx) {
		var r schema.CommunityReport
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, nil
}
