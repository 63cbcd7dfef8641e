package schema

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// GeoJSON is a mongodb geospatial point. Coordinates are stored in
// (longitude, latitude) order as the 2dsphere index requires.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewPoint builds a GeoJSON point from a longitude/latitude pair
func NewPoint(longitude, latitude float64) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// ToLocation converts a GeoJSON point back to a latitude/longitude pair.
// It returns nil for anything that is not a well-formed point.
func (g *GeoJSON) ToLocation() *Location {
	if g == nil || len(g.Coordinates) != 2 {
		return nil
	}
	return &Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}
