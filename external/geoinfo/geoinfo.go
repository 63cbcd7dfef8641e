// Package geoinfo resolves free-text addresses into coordinates through
// the Google Maps geocoding API. Results are cached in memory since search
// queries repeat heavily.
package geoinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/junianwoo/fyd-sub001/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second

	cacheSizeBytes = 4 * 1024 * 1024
	cacheTTL       = 24 * 60 * 60 // seconds
)

var ErrNoGeocodingResult = fmt.Errorf("no geocoding result")

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	Geocode(address string) (*schema.Location, error)
}

type geoInfo struct {
	client *maps.Client
	cache  *freecache.Cache
}

// Geocode resolves an address to a lat/lng pair
func (g *geoInfo) Geocode(address string) (*schema.Location, error) {
	key := []byte(address)
	if cached, err := g.cache.Get(key); err == nil {
		var loc schema.Location
		if err := json.Unmarshal(cached, &loc); err == nil {
			return &loc, nil
		}
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Info("query geocoding")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoGeocodingResult
	}

	loc := schema.Location{
		Latitude:  results[0].Geometry.Location.Lat,
		Longitude: results[0].Geometry.Location.Lng,
	}

	if encoded, err := json.Marshal(loc); err == nil {
		_ = g.cache.Set(key, encoded, cacheTTL)
	}

	return &loc, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
		cache:  freecache.NewCache(cacheSizeBytes),
	}, nil
}
