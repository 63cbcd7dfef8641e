package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junianwoo/fyd-sub001/consensus"
	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/store"
	"github.com/junianwoo/fyd-sub001/store/mocks"
)

type noopTrigger struct{}

func (noopTrigger) TriggerAlertEngine(string) error { return nil }

func newReportRouter(m *mocks.MockMongoStore) *gin.Engine {
	s := Server{
		mongoStore: m,
		consensus:  consensus.NewEngine(m, noopTrigger{}),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/community-reports", s.submitCommunityReport)
	return router
}

func TestSubmitCommunityReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	id := primitive.NewObjectID()

	m.EXPECT().GetListing(id).Return(&schema.Listing{
		ID:              id,
		AcceptingStatus: schema.StatusNotAccepting,
	}, nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(nil, store.ErrPendingUpdateNotFound)
	m.EXPECT().CreatePendingUpdate(id, schema.StatusAccepting, gomock.Any()).Return(&schema.PendingUpdate{
		ListingID:      id,
		ProposedStatus: schema.StatusAccepting,
		Count:          1,
	}, nil)

	router := newReportRouter(m)

	body := `{"listing_id":"` + id.Hex() + `","status":"accepting"}`
	req := httptest.NewRequest("POST", "/community-reports", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "OK", resp["result"])
}

// The response of a flip-triggering report is indistinguishable from any
// other accepted report.
func TestSubmitCommunityReportHidesFlip(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	id := primitive.NewObjectID()

	m.EXPECT().GetListing(id).Return(&schema.Listing{
		ID:              id,
		AcceptingStatus: schema.StatusNotAccepting,
	}, nil)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Return(nil)
	m.EXPECT().GetPendingUpdate(id, schema.StatusAccepting).Return(&schema.PendingUpdate{
		ListingID:            id,
		ProposedStatus:       schema.StatusAccepting,
		Count:                1,
		ReporterFingerprints: []string{"9.9.9.9"},
	}, nil)
	m.EXPECT().IncrementPendingUpdate(id, schema.StatusAccepting, gomock.Any()).Return(int64(2), nil)
	m.EXPECT().CommitStatusFlip(id, schema.StatusAccepting).Return(nil)

	router := newReportRouter(m)

	body := `{"listing_id":"` + id.Hex() + `","status":"accepting"}`
	req := httptest.NewRequest("POST", "/community-reports", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":"OK"}`, w.Body.String())
}

func TestSubmitCommunityReportUnknownStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	router := newReportRouter(m)

	body := `{"listing_id":"` + primitive.NewObjectID().Hex() + `","status":"open"}`
	req := httptest.NewRequest("POST", "/community-reports", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(1201), resp.Code)
}

func TestSubmitCommunityReportUnknownListing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	id := primitive.NewObjectID()

	m.EXPECT().GetListing(id).Return(nil, store.ErrListingNotFound)
	m.EXPECT().AppendCommunityReport(gomock.Any()).Times(0)

	router := newReportRouter(m)

	body := `{"listing_id":"` + id.Hex() + `","status":"accepting"}`
	req := httptest.NewRequest("POST", "/community-reports", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitCommunityReportMissingListingID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	router := newReportRouter(m)

	req := httptest.NewRequest("POST", "/community-reports", strings.NewReader(`{"status":"accepting"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
