package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junianwoo/fyd-sub001/external/geoinfo"
	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/store"
)

// subscriptionList is the API to list the requester's alert subscriptions
func (s *Server) subscriptionList(c *gin.Context) {
	accountNumber := c.GetString("requester")

	subscriptions, err := s.mongoStore.ListSubscriptions(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}

// subscriptionCreate is the API to register a monitored area. The center
// comes either from explicit coordinates or from geocoding an address.
func (s *Server) subscriptionCreate(c *gin.Context) {
	logger := log.WithField("api", "subscriptionCreate")
	accountNumber := c.GetString("requester")

	var params struct {
		Label                string   `json:"label"`
		Latitude             *float64 `json:"lat"`
		Longitude            *float64 `json:"lng"`
		Address              string   `json:"address"`
		RadiusKm             float64  `json:"radius_km"`
		ApplyFilters         bool     `json:"apply_filters"`
		Languages            []string `json:"languages"`
		WheelchairAccessible *bool    `json:"wheelchair_accessible"`
		AccessibleParking    *bool    `json:"accessible_parking"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var location schema.Location
	switch {
	case params.Latitude != nil && params.Longitude != nil:
		location = schema.Location{
			Latitude:  *params.Latitude,
			Longitude: *params.Longitude,
		}
	case params.Address != "":
		loc, err := s.geoClient.Geocode(params.Address)
		if err != nil {
			if err == geoinfo.ErrNoGeocodingResult {
				abortWithEncoding(c, http.StatusBadRequest, errorGeocodeFailed)
				return
			}
			logger.WithError(err).Error("geocode subscription address")
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		location = *loc
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	subscription, err := s.mongoStore.CreateSubscription(schema.AlertSubscription{
		AccountNumber:        accountNumber,
		Label:                params.Label,
		Location:             schema.NewPoint(location.Longitude, location.Latitude),
		RadiusKm:             params.RadiusKm,
		Active:               true,
		ApplyFilters:         params.ApplyFilters,
		Languages:            params.Languages,
		WheelchairAccessible: params.WheelchairAccessible,
		AccessibleParking:    params.AccessibleParking,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

// subscriptionUpdate is the API for partial updates of a subscription
func (s *Server) subscriptionUpdate(c *gin.Context) {
	accountNumber := c.GetString("requester")

	subscriptionID, err := primitive.ObjectIDFromHex(c.Param("subscriptionID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Label                *string   `json:"label"`
		Latitude             *float64  `json:"lat"`
		Longitude            *float64  `json:"lng"`
		RadiusKm             *float64  `json:"radius_km"`
		Active               *bool     `json:"active"`
		ApplyFilters         *bool     `json:"apply_filters"`
		Languages            *[]string `json:"languages"`
		WheelchairAccessible *bool     `json:"wheelchair_accessible"`
		AccessibleParking    *bool     `json:"accessible_parking"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	update := store.SubscriptionUpdateParams{
		Label:                params.Label,
		RadiusKm:             params.RadiusKm,
		Active:               params.Active,
		ApplyFilters:         params.ApplyFilters,
		Languages:            params.Languages,
		WheelchairAccessible: params.WheelchairAccessible,
		AccessibleParking:    params.AccessibleParking,
	}
	if params.Latitude != nil && params.Longitude != nil {
		update.Location = &schema.Location{
			Latitude:  *params.Latitude,
			Longitude: *params.Longitude,
		}
	}

	err = s.mongoStore.UpdateSubscription(accountNumber, subscriptionID, update)
	if err == store.ErrSubscriptionNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorSubscriptionNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// subscriptionDelete is the API to remove a subscription
func (s *Server) subscriptionDelete(c *gin.Context) {
	accountNumber := c.GetString("requester")

	subscriptionID, err := primitive.ObjectIDFromHex(c.Param("subscriptionID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	err = s.mongoStore.DeleteSubscription(accountNumber, subscriptionID)
	if err == store.ErrSubscriptionNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorSubscriptionNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
