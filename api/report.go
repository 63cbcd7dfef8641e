package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junianwoo/fyd-sub001/consensus"
	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/store"
)

// submitCommunityReport is the API for anonymous community reports on a
// listing's accepting status. The reporter fingerprint is the client IP;
// the response never reveals whether the report triggered a status change.
func (s *Server) submitCommunityReport(c *gin.Context) {
	logger := log.WithField("api", "submitCommunityReport")

	var params struct {
		ListingID string `json:"listing_id"`
		Status    string `json:"status"`
		Details   string `json:"details"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := s.consensus.SubmitReport(
		params.ListingID,
		schema.AcceptingStatus(params.Status),
		c.ClientIP(),
		params.Details,
	)
	switch err {
	case nil:
	case consensus.ErrMissingListingID, consensus.ErrInvalidListingID:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	case consensus.ErrInvalidStatus:
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownStatus)
		return
	case store.ErrListingNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorListingNotFound)
		return
	default:
		logger.WithError(err).Error("submit community report")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if result.StatusChanged {
		logger.WithField("listing_id", params.ListingID).Info("community consensus committed a status change")
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
