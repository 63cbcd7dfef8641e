// Package consensus implements the community-status consensus mechanism.
// Anonymous reports of a listing's accepting status accumulate per
// (listing, proposed status) tally; once enough distinct reporters agree,
// the listing's authoritative status flips and every tally of the listing
// is wiped.
package consensus

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/store"
)

// ConsensusThreshold is the number of distinct corroborating reports that
// commits a status flip.
const ConsensusThreshold = 2

var (
	ErrMissingListingID = fmt.Errorf("missing listing id")
	ErrInvalidListingID = fmt.Errorf("invalid listing id")
	ErrInvalidStatus    = fmt.Errorf("invalid accepting status")
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "consensus")
}

// Result is the outcome of one report submission. Submitters are told their
// vote was recorded; they are never told whether it was the one that
// triggered a flip.
type Result struct {
	Accepted      bool  `json:"accepted"`
	StatusChanged bool  `json:"-"`
	NewCount      int64 `json:"-"`
	Threshold     int64 `json:"-"`
}

// Store is the storage surface the engine needs. store.MongoStore
// satisfies it.
type Store interface {
	GetListing(listingID primitive.ObjectID) (*schema.Listing, error)
	AppendCommunityReport(report schema.CommunityReport) error
	GetPendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus) (*schema.PendingUpdate, error)
	CreatePendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus, fingerprint string) (*schema.PendingUpdate, error)
	IncrementPendingUpdate(listingID primitive.ObjectID, status schema.AcceptingStatus, fingerprint string) (int64, error)
	CommitStatusFlip(listingID primitive.ObjectID, status schema.AcceptingStatus) error
}

// AlertTrigger hands a committed flip to the alert engine. The call is
// fire-and-forget from the engine's point of view.
type AlertTrigger interface {
	TriggerAlertEngine(listingID string) error
}

type Engine struct {
	store   Store
	trigger AlertTrigger
}

func NewEngine(store Store, trigger AlertTrigger) *Engine {
	return &Engine{
		store:   store,
		trigger: trigger,
	}
}

// SubmitReport records one community report and commits the status flip
// once the tally reaches the threshold.
//
// An empty fingerprint disables duplicate suppression for that report; it
// always counts. A report carrying a fingerprint already counted toward
// the same (listing, status) tally returns the current count without
// mutating anything.
func (e *Engine) SubmitReport(listingID string, proposedStatus schema.AcceptingStatus, fingerprint, details string) (*Result, error) {
	if listingID == "" {
		return nil, ErrMissingListingID
	}
	if !proposedStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	oid, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return nil, ErrInvalidListingID
	}

	listing, err := e.store.GetListing(oid)
	if err != nil {
		return nil, err
	}

	// audit trail only; a failed append must not fail the report
	if err := e.store.AppendCommunityReport(schema.CommunityReport{
		ListingID:           oid,
		ReportedStatus:      proposedStatus,
		ReporterFingerprint: fingerprint,
		Details:             details,
		Timestamp:           time.Now().Unix(),
	}); err != nil {
		log.WithError(err).Warn("append community report")
	}

	pending, err := e.store.GetPendingUpdate(oid, proposedStatus)
	switch err {
	case nil:
	case store.ErrPendingUpdateNotFound:
		created, createErr := e.store.CreatePendingUpdate(oid, proposedStatus, fingerprint)
		if createErr == nil {
			return &Result{
				Accepted:  true,
				NewCount:  created.Count,
				Threshold: ConsensusThreshold,
			}, nil
		}
		if createErr != store.ErrPendingUpdateExists {
			return nil, createErr
		}
		// another report opened the tally first; count toward it instead
		pending, err = e.store.GetPendingUpdate(oid, proposedStatus)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if pending.HasFingerprint(fingerprint) {
		return &Result{
			Accepted:  true,
			NewCount:  pending.Count,
			Threshold: ConsensusThreshold,
		}, nil
	}

	newCount, err := e.store.IncrementPendingUpdate(oid, proposedStatus, fingerprint)
	if err == store.ErrFingerprintCounted {
		// raced with another report from the same source
		return &Result{
			Accepted:  true,
			NewCount:  pending.Count,
			Threshold: ConsensusThreshold,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if newCount < ConsensusThreshold {
		return &Result{
			Accepted:  true,
			NewCount:  newCount,
			Threshold: ConsensusThreshold,
		}, nil
	}

	if err := e.store.CommitStatusFlip(oid, proposedStatus); err != nil {
		return nil, err
	}

	if proposedStatus == schema.StatusAccepting && listing.AcceptingStatus != schema.StatusAccepting {
		if err := e.trigger.TriggerAlertEngine(listingID); err != nil {
			log.WithError(err).WithField("listing_id", listingID).Error("trigger alert engine")
		}
	}

	return &Result{
		Accepted:      true,
		StatusChanged: true,
		NewCount:      newCount,
		Threshold:     ConsensusThreshold,
	}, nil
}
