package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/junianwoo/fyd-sub001/schema"
)

var (
	ErrPendingUpdateNotFound = fmt.Errorf("pending update not found")
	ErrPendingUpdateExists   = fmt.Errorf("pending update already exists")
	ErrFingerprintCounted    = fmt.Errorf("fingerprint already counted")
)

// PendingOperator - operations on the per-(listing, status) consensus tallies
type PendingOperator interface {
	GetPendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus) (*schema.PendingUpdate, error)
	CreatePendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus, fingerprint string) (*schema.PendingUpdate, error)
	IncrementPendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus, fingerprint string) (int64, error)
	CommitStatusFlip(listingID primitive.ObjectID, status schema.AcceptingStatus) error
	ListPendingUpdates(listingID primitive.ObjectID) ([]schema.PendingUpdate, error)
}

func (m *mongoDB) GetPendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus) (*schema.PendingUpdate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PendingUpdateCollection)

	var pending schema.PendingUpdate
	query := bson.M{
		"listing_id":      listingID,
		"proposed_status": status,
	}
	if err := c.FindOne(ctx, query).Decode(&pending); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPendingUpdateNotFound
		}
		return nil, err
	}

	return &pending, nil
}

// CreatePendingUpdate opens a tally with count 1. The unique index on
// (listing_id, proposed_status) turns a concurrent create into
// ErrPendingUpdateExists so the caller can fall back to an increment.
func (m *mongoDB) CreatePendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus, fingerprint string) (*schema.PendingUpdate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().Unix()
	fingerprints := []string{}
	if fingerprint != "" {
		fingerprints = append(fingerprints, fingerprint)
	}

	pending := schema.PendingUpdate{
		ID:                   primitive.NewObjectID(),
		ListingID:            listingID,
		ProposedStatus:       status,
		Count:                1,
		ReporterFingerprints: fingerprints,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	c := m.client.Database(m.database).Collection(schema.PendingUpdateCollection)
	if _, err := c.InsertOne(ctx, pending); err != nil {
		if we, ok := err.(mongo.WriteException); ok {
			for _, e := range we.WriteErrors {
				if e.Code == DuplicateKeyCode {
					return nil, ErrPendingUpdateExists
				}
			}
		}
		return nil, err
	}

	return &pending, nil
}

// IncrementPendingUpdate adds one distinct report to a tally and returns the
// updated count. With a fingerprint present the filter excludes tallies that
// already counted it, so two racing reports from the same source can only
// increment once; the loser gets ErrFingerprintCounted.
func (m *mongoDB) IncrementPendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus, fingerprint string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"listing_id":      listingID,
		"proposed_status": status,
	}
	update := bson.M{
		"$inc": bson.M{"count": 1},
		"$set": bson.M{"updated_at": time.Now().Unix()},
	}
	if fingerprint != "" {
		query["reporter_fingerprints"] = bson.M{"$ne": fingerprint}
		update["$push"] = bson.M{"reporter_fingerprints": fingerprint}
	}

	c := m.client.Database(m.database).Collection(schema.PendingUpdateCollection)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated schema.PendingUpdate
	if err := c.FindOneAndUpdate(ctx, query, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			if fingerprint != "" {
				return 0, ErrFingerprintCounted
			}
			return 0, ErrPendingUpdateNotFound
		}
		return 0, err
	}

	return updated.Count, nil
}

// CommitStatusFlip performs the consensus commit in a single transaction:
// the listing flips to the proposed status with community provenance and
// every pending tally of the listing is wiped, all statuses included. A
// failed listing write rolls back the wipe and vice versa.
func (m *mongoDB) CommitStatusFlip(listingID primitive.ObjectID, status schema.AcceptingStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		listings := m.client.Database(m.database).Collection(schema.ListingCollection)
		result, err := listings.UpdateOne(sc, bson.M{"_id": listingID}, bson.M{
			"$set": bson.M{
				"accepting_status":   status,
				"status_verified_by": schema.VerifiedByCommunity,
				"status_ts":          time.Now().Unix(),
			},
			// one commit event counts as one, regardless of the tally size
			"$inc": bson.M{"community_report_count": 1},
		})
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, ErrListingNotFound
		}

		pendings := m.client.Database(m.database).Collection(schema.PendingUpdateCollection)
		if _, err := pendings.DeleteMany(sc, bson.M{"listing_id": listingID}); err != nil {
			return nil, err
		}

		return nil, nil
	})

	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"listing_id": listingID.Hex(),
			"status":     status,
			"error":      err,
		}).Error("commit status flip")
		return err
	}

	return nil
}

func (m *mongoDB) ListPendingUpdates(listingID primitive.ObjectID) ([]schema.PendingUpdate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PendingUpdateCollection)
	cur, err := c.Find(ctx, bson.M{"listing_id": listingID})
	if err != nil {
		return nil, err
	}

	pendings := make([]schema.PendingUpdate, 0)
	for cur.Next(ctx) {
		var p schema.PendingUpdate
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		pendings = append(pendings, p)
	}

	return pendings, nil
}
