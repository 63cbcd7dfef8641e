package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junianwoo/fyd-sub001/store"
)

// adminRunAlertEngine enqueues an alert-engine run for a listing without
// waiting for a community consensus flip.
func (s *Server) adminRunAlertEngine(c *gin.Context) {
	var params struct {
		ListingID string `json:"listing_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := primitive.ObjectIDFromHex(params.ListingID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.alertTrigger.TriggerAlertEngine(params.ListingID); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminReviewAssistedAccess approves or declines a pending application
func (s *Server) adminReviewAssistedAccess(c *gin.Context) {
	applicationID := c.Param("applicationID")

	var params struct {
		Approve  bool   `json:"approve"`
		Reviewer string `json:"reviewer"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	err := s.store.ReviewAssistedAccessApplication(applicationID, params.Approve, params.Reviewer)
	switch err {
	case nil:
	case store.ErrApplicationNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorApplicationNotFound)
		return
	case store.ErrApplicationReviewed:
		abortWithEncoding(c, http.StatusForbidden, errorApplicationReviewed)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminServiceMetrics reports today's and yesterday's report and commit counts
func (s *Server) adminServiceMetrics(c *gin.Context) {
	now := time.Now().UTC()
	todayBegin := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()

	metrics, err := s.mongoStore.GetServiceMetrics(todayBegin)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// adminListPendingUpdates exposes the open tallies of a listing for support
func (s *Server) adminListPendingUpdates(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Query("listing_id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	pendings, err := s.mongoStore.ListPendingUpdates(listingID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending_updates": pendings})
}

// adminListCommunityReports exposes the report audit trail of a listing
func (s *Server) adminListCommunityReports(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Query("listing_id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	reports, err := s.mongoStore.ListCommunityReports(listingID, parseLimitQuery(c, 100))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
