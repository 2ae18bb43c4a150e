package domain

import (
	"fmt"
	"time"
)

// MissingMarker fills metadata fields for sites whose retrieval returned no
// observations, keeping the metadata table one-row-per-site.
const MissingMarker = "unavailable"

// WaterLevel is one recorded groundwater-level reading. Site is the bare
// site number (agency code stripped) and always leads the record.
type WaterLevel struct {
	Site      string     `json:"site"`
	Time      string     `json:"time"`               // raw service timestamp
	DateTime  *time.Time `json:"date_time,omitempty"` // parsed; nil in raw-time mode
	Value     *float64   `json:"value,omitempty"`
	Unit      string     `json:"unit,omitempty"`
	Qualifier string     `json:"qualifier,omitempty"`
}

// Site is one monitoring location returned by GetFeatureOfInterest.
type Site struct {
	Site        string  `json:"site"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"dec_lat_va"`
	Longitude   float64 `json:"dec_lon_va"`
}

// SiteMetadata is the metadata attribute set captured from one site's
// GetObservation document, one row per requested site.
type SiteMetadata struct {
	Site             string `json:"site"`
	URL              string `json:"url"`
	Identifier       string `json:"identifier"`
	GenerationDate   string `json:"generationDate"`
	ResponsibleParty string `json:"responsibleParty"`
	Contact          string `json:"contact"`
}

// WaterLevelSet is the combined result of a water-level retrieval: the
// row-union of every site's readings, with the location and metadata tables
// carried alongside rather than folded into the rows.
type WaterLevelSet struct {
	Levels   []WaterLevel   `json:"levels"`
	Sites    []Site         `json:"sites"`
	Metadata []SiteMetadata `json:"metadata"`
}

// SiteSet is a standalone GetFeatureOfInterest result, annotated with the
// request URL and the wall-clock query time.
type SiteSet struct {
	Sites     []Site    `json:"sites"`
	URL       string    `json:"url"`
	QueryTime time.Time `json:"queryTime"`
}

// ObservationImport is one GetObservation response reduced to rows plus the
// named attributes the document exposed. Attrs holds only what the payload
// carried; absent attributes are left unset, not defaulted.
type ObservationImport struct {
	Levels []WaterLevel
	Attrs  Attributes
}

// BBox is a geographic bounding box in the service's fixed bound order.
type BBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// String serializes the box as the comma-joined bound list the SOS bbox
// parameter expects.
func (b BBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.South, b.West, b.North, b.East)
}

// Contains reports whether a coordinate falls within the box.
func (b BBox) Contains(lat, lon float64) bool {
	return lat >= b.South && lat <= b.North && lon >= b.West && lon <= b.East
}

// Selector chooses the sites a feature-of-interest request addresses:
// either an explicit identifier list or a bounding box, never both.
type Selector struct {
	FeatureIDs []string
	BBox       *BBox
}

// Validate enforces that exactly one selection mode is supplied.
func (s Selector) Validate() error {
	hasIDs := len(s.FeatureIDs) > 0
	switch {
	case hasIDs && s.BBox != nil:
		return ErrConflictingSelector
	case !hasIDs && s.BBox == nil:
		return ErrNoSelector
	}
	return nil
}
