package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junianwoo/fyd-sub001/external/geoinfo"
	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/store"
)

// listingSearch is the API for searching listings around a point. The
// center comes either from lat/lng or from geocoding a free-text query.
func (s *Server) listingSearch(c *gin.Context) {
	logger := log.WithField("api", "listingSearch")

	var params struct {
		Latitude         float64 `form:"lat"`
		Longitude        float64 `form:"lng"`
		Query            string  `form:"q"`
		RadiusKm         float64 `form:"radius"`
		Status           string  `form:"status"`
		Language         string  `form:"language"`
		WheelchairAccess bool    `form:"wheelchair_access"`
		ParkingAccess    bool    `form:"accessible_parking"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	center := schema.Location{
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
	}

	if params.Latitude == 0 && params.Longitude == 0 {
		if params.Query == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}

		loc, err := s.geoClient.Geocode(params.Query)
		if err != nil {
			if err == geoinfo.ErrNoGeocodingResult {
				abortWithEncoding(c, http.StatusBadRequest, errorGeocodeFailed)
				return
			}
			logger.WithError(err).Error("geocode search query")
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		center = *loc
	}

	if params.Status != "" && !schema.AcceptingStatus(params.Status).Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownStatus)
		return
	}

	listings, err := s.mongoStore.SearchListings(store.ListingSearchParams{
		Center:           center,
		RadiusKm:         params.RadiusKm,
		Status:           schema.AcceptingStatus(params.Status),
		Language:         params.Language,
		WheelchairAccess: params.WheelchairAccess,
		ParkingAccess:    params.ParkingAccess,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// listingDetail is the API to query a single listing
func (s *Server) listingDetail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("listingID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	listing, err := s.mongoStore.GetListing(id)
	if err == store.ErrListingNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorListingNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// parseLimitQuery reads an optional positive limit query parameter
func parseLimitQuery(c *gin.Context, fallback int64) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
