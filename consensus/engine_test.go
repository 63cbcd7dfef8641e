package consensus

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/store"
	"github.com/junianwoo/fyd-sub001/store/mocks"
)

type fakeTrigger struct {
	triggered []string
	err       error
}

func (t *fakeTrigger) TriggerAlertEngine(listingID string) error {
	t.triggered = append(t.triggered, listingID)
	return t.err
}

func notAcceptingListing(id primitive.ObjectID) *schema.Listing {
	return &schema.Listing{
		ID:              id,
		Kind:            schema.KindClinic,
		Name:            "Clinique du Plateau",
		AcceptingStatus: schema.StatusNotAccepting,
	}
}

func TestSubmitReportValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := NewEngine(mocks.NewMockMongoStore(ctl), &fakeTrigger{})

	_, err := engine.SubmitReport("", schema.StatusAccepting, "1.2.3.4", "")
	assert.Equal(t, ErrMissingListingID, err)

	_, err = engine.SubmitReport(primitive.NewObjectID().Hex(), "open", "1.2.3.4", "")
	assert.Equal(t, ErrInvalidStatus, err)

	_, err = engine.SubmitReport("not-an-object-id", schema.StatusAccepting, "1.2.3.4", "")
	assert.Equal(t, ErrInvalidListingID, err)
}

func TestSubmitReportUnknownListing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	id := primitive.NewObjectID()

	m.EXPECT().GetListing(id).Return(nil, store.ErrListingNotFound)

	engine := NewEngine(m, &fakeTrigger{})
	_, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "1.2.3.4", "")
	assert.Equal(t, store.ErrListingNotFound, err)
}

// First report opens a tally, second distinct report commits the flip.
func TestSubmitReportReachesConsensus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	// first report
	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(nil, store.ErrPendingUpdateNotFound)
	m.EXPECT().CreatePendingUpdate(id, schema.StatusAccepting, "1.1.1.1").Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)

	result, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "1.1.1.1", "")
	assert.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.False(t, result.StatusChanged)
	assert.Equal(t, int64(1), result.NewCount)
	assert.Empty(t, trigger.triggered)

	// second report from a different reporter
	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)
	m.EXPECT().IncrementPendingUpdate(id, schema.StatusAccepting, "2.2.2.2").Return(int64(2), nil)
	m.EXPECT().CommitStatusFlip(id, schema.StatusAccepting).Return(nil)

	result, err = engine.SubmitReport(id.Hex(), schema.StatusAccepting, "2.2.2.2", "")
	assert.NoError(t, err)
	assert.True(t, result.StatusChanged)
	assert.Equal(t, []string{id.Hex()}, trigger.triggered)
}

// The same fingerprint reporting twice never advances the tally.
func TestSubmitReportDuplicateFingerprint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)

	result, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "1.1.1.1", "")
	assert.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.False(t, result.StatusChanged)
	assert.Equal(t, int64(1), result.NewCount)
	assert.Empty(t, trigger.triggered)
}

// An empty fingerprint always counts, even when the tally already holds
// empty-fingerprint reports.
func TestSubmitReportEmptyFingerprintAlwaysCounts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(&schema.PendingUpdate{
		ListingID:      id,
		ProposedStatus: schema.StatusAccepting,
		Count:          1,
	}, nil)
	m.EXPECT().IncrementPendingUpdate(id, schema.StatusAccepting, "").Return(int64(2), nil)
	m.EXPECT().CommitStatusFlip(id, schema.StatusAccepting).Return(nil)

	result, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "", "")
	assert.NoError(t, err)
	assert.True(t, result.StatusChanged)
	assert.Len(t, trigger.triggered, 1)
}

// Reports for different proposed statuses accumulate independently.
func TestSubmitReportIndependentTallies(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusWaitlist).Return(nil, store.ErrPendingUpdateNotFound)
	m.EXPECT().CreatePendingUpdate(id, schema.StatusWaitlist, "2.2.2.2").Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusWaitlist,
		Count:                1,
		ReporterFingerprints: []string{"2.2.2.2"},
	}, nil)

	// a tally for accepting already sits at count 1; a waitlist report
	// opens its own tally instead of advancing it
	result, err := engine.SubmitReport(id.Hex(), schema.StatusWaitlist, "2.2.2.2", "")
	assert.NoError(t, err)
	assert.False(t, result.StatusChanged)
	assert.Equal(t, int64(1), result.NewCount)
	assert.Empty(t, trigger.triggered)
}

// Losing the tally-creation race falls back to counting toward the
// winner's tally.
func TestSubmitReportCreateRaceFallback(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(nil, store.ErrPendingUpdateNotFound)
	m.EXPECT().CreatePendingUpdate(id, schema.StatusAccepting, "2.2.2.2").Return(nil, store.ErrPendingUpdateExists)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)
	m.EXPECT().IncrementPendingUpdate(id, schema.StatusAccepting, "2.2.2.2").Return(int64(2), nil)
	m.EXPECT().CommitStatusFlip(id, schema.StatusAccepting).Return(nil)

	result, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "2.2.2.2", "")
	assert.NoError(t, err)
	assert.True(t, result.StatusChanged)
}

func TestSubmitReportCommitFailurePropagates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	commitErr := errors.New("transaction aborted")

	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)
	m.EXPECT().IncrementPendingUpdate(id, schema.StatusAccepting, "2.2.2.2").Return(int64(2), nil)
	m.EXPECT().CommitStatusFlip(id, schema.StatusAccepting).Return(commitErr)

	_, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "2.2.2.2", "")
	assert.Equal(t, commitErr, err)
	assert.Empty(t, trigger.triggered)
}

// A failed audit append is logged but does not reject the report.
func TestSubmitReportAuditFailureIsNotFatal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(errors.New("insert failed"))
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(nil, store.ErrPendingUpdateNotFound)
	m.EXPECT().CreatePendingUpdate(id, schema.StatusAccepting, "1.1.1.1").Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)

	result, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "1.1.1.1", "")
	assert.NoError(t, err)
	assert.True(t, result.Accepted)
}

// Flipping between non-accepting statuses never wakes the alert engine.
func TestSubmitReportNoAlertOnNonAcceptingFlip(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	listing := notAcceptingListing(id)
	listing.AcceptingStatus = schema.StatusAccepting

	m.EXPECT().GetListing(id).Return(listing, nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusWaitlist).Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusWaitlist,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)
	m.EXPECT().IncrementPendingUpdate(id, schema.StatusWaitlist, "2.2.2.2").Return(int64(2), nil)
	m.EXPECT().CommitStatusFlip(id, schema.StatusWaitlist).Return(nil)

	result, err := engine.SubmitReport(id.Hex(), schema.StatusWaitlist, "2.2.2.2", "")
	assert.NoError(t, err)
	assert.True(t, result.StatusChanged)
	assert.Empty(t, trigger.triggered)
}

// A listing already accepting does not re-trigger alerts when the
// committed status is accepting again.
func TestSubmitReportNoAlertWhenAlreadyAccepting(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	listing := notAcceptingListing(id)
	listing.AcceptingStatus = schema.StatusAccepting

	m.EXPECT().GetListing(id).Return(listing, nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)
	m.EXPECT().IncrementPendingUpdate(id, schema.StatusAccepting, "2.2.2.2").Return(int64(2), nil)
	m.EXPECT().CommitStatusFlip(id, schema.StatusAccepting).Return(nil)

	result, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "2.2.2.2", "")
	assert.NoError(t, err)
	assert.True(t, result.StatusChanged)
	assert.Empty(t, trigger.triggered)
}

// A trigger failure is logged; the submission still succeeds.
func TestSubmitReportTriggerFailureIsNotFatal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	trigger := &fakeTrigger{err: errors.New("broker unavailable")}
	id := primitive.NewObjectID()
	engine := NewEngine(m, trigger)

	m.EXPECT().GetListing(id).Return(notAcceptingListing(id), nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"1.1.1.1"},
	}, nil)
	m.EXPECT().IncrementPendingUpdate(id, schema.StatusAccepting, "2.2.2.2").Return(int64(2), nil)
	m.EXPECT().CommitStatusFlip(id, schema.StatusAccepting).Return(nil)

	result, err := engine.SubmitReport(id.Hex(), schema.StatusAccepting, "2.2.2.2", "")
	assert.NoError(t, err)
	assert.True(t, result.StatusChanged)
	assert.Len(t, trigger.triggered, 1)
}
