package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/junianwoo/fyd-sub001/schema"
)

// ServiceMetric - day-over-day community activity counters
type ServiceMetric interface {
	GetServiceMetrics(todayBeginTime int64) (*schema.ServiceMetrics, error)
}

func matchReportedToday(todayBeginTime int64) bson.M {
	return bson.M{
		"ts": bson.M{
			"$gte": todayBeginTime,
		},
	}
}

func matchReportedYesterday(todayBeginTime int64) bson.M {
	return bson.M{
		"ts": bson.M{
			"$gte": todayBeginTime - 24*60*60,
			"$lt":  todayBeginTime,
		},
	}
}

// GetServiceMetrics counts received reports and committed community flips
// for today and yesterday relative to todayBeginTime.
func (m *mongoDB) GetServiceMetrics(todayBeginTime int64) (*schema.ServiceMetrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	reports := m.client.Database(m.database).Collection(schema.CommunityReportCollection)
	reportsToday, err := reports.CountDocuments(ctx, matchReportedToday(todayBeginTime))
	if err != nil {
		return nil, err
	}
	reportsYesterday, err := reports.CountDocuments(ctx, matchReportedYesterday(todayBeginTime))
	if err != nil {
		return nil, err
	}

	listings := m.client.Database(m.database).Collection(schema.ListingCollection)
	commitsToday, err := listings.CountDocuments(ctx, bson.M{
		"status_verified_by": schema.VerifiedByCommunity,
		"status_ts":          bson.M{"$gte": todayBeginTime},
	})
	if err != nil {
		return nil, err
	}
	commitsYesterday, err := listings.CountDocuments(ctx, bson.M{
		"status_verified_by": schema.VerifiedByCommunity,
		"status_ts": bson.M{
			"$gte": todayBeginTime - 24*60*60,
			"$lt":  todayBeginTime,
		},
	})
	if err != nil {
		return nil, err
	}

	return &schema.ServiceMetrics{
		ReportsToday:     reportsToday,
		ReportsYesterday: reportsYesterday,
		CommitsToday:     commitsToday,
		CommitsYesterday: commitsYesterday,
	}, nil
}
