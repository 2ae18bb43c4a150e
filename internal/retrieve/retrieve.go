// Package retrieve assembles NGWMN water-level and site retrievals: it walks
// the requested sites one blocking request at a time, merges the per-site
// rows, and keeps each site's metadata attributes alive across the merge.
package retrieve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jdorvi/dataRetrieval/internal/domain"
)

// Service selects which SOS retrieval a generic Fetch performs.
type Service string

const (
	// ServiceObservation fetches groundwater-level time series.
	ServiceObservation Service = "observation"
	// ServiceFeatureOfInterest fetches site locations.
	ServiceFeatureOfInterest Service = "featureOfInterest"
)

// ErrBBoxObservation rejects bounding-box selection on the observation path,
// which the service only supports for feature-of-interest lookups.
var ErrBBoxObservation = errors.New("observation retrieval selects by feature identifier, not bounding box")

// Importer fetches one SOS response and reduces it to domain records.
// *ngwmn.Client is the production implementation.
type Importer interface {
	Observations(ctx context.Context, featureID string, parseTime bool, timezone string) (*domain.ObservationImport, error)
	FeatureOfInterest(ctx context.Context, sel domain.Selector, srs string) ([]domain.Site, string, error)
}

// Options carries the per-call settings of a retrieval. The zero value
// parses timestamps using each record's embedded UTC offset and the default
// spatial reference.
type Options struct {
	// RawTimes leaves observation timestamps as the strings the service
	// returned. Set it when retrying a batch after a TimeParseError.
	RawTimes bool
	// Timezone is an IANA zone name for parsed timestamps; empty applies
	// each record's embedded offset and converts to UTC.
	Timezone string
	// SRS overrides the spatial reference URN on bounding-box lookups.
	SRS string
}

// Dataset is the result of a generic Fetch: exactly one field is set,
// matching the requested service.
type Dataset struct {
	Levels *domain.WaterLevelSet `json:"levels,omitempty"`
	Sites  *domain.SiteSet       `json:"sites,omitempty"`
}

// Retriever runs retrievals against an Importer. Every call builds fresh
// state; nothing is cached or shared between calls.
type Retriever struct {
	importer Importer
	logger   *slog.Logger
}

// New creates a Retriever.
func New(importer Importer, logger *slog.Logger) *Retriever {
	return &Retriever{importer: importer, logger: logger}
}

// Fetch dispatches to the observation or feature-of-interest retrieval by
// service name. An unknown service fails before any request is issued.
func (r *Retriever) Fetch(ctx context.Context, service Service, sel domain.Selector, opts Options) (*Dataset, error) {
	r.advisory()

	switch service {
	case ServiceObservation:
		if sel.BBox != nil {
			return nil, ErrBBoxObservation
		}
		set, err := r.waterLevels(ctx, sel.FeatureIDs, opts)
		if err != nil {
			return nil, err
		}
		return &Dataset{Levels: set}, nil
	case ServiceFeatureOfInterest:
		set, err := r.featureOfInterest(ctx, normalizeSelector(sel), opts.SRS)
		if err != nil {
			return nil, err
		}
		return &Dataset{Sites: set}, nil
	default:
		return nil, fmt.Errorf("%q: %w", service, domain.ErrUnknownService)
	}
}

// WaterLevels fetches and merges groundwater levels for the given feature
// identifiers.
func (r *Retriever) WaterLevels(ctx context.Context, featureIDs []string, opts Options) (*domain.WaterLevelSet, error) {
	r.advisory()
	return r.waterLevels(ctx, featureIDs, opts)
}

// Sites fetches site locations for the given feature identifiers.
func (r *Retriever) Sites(ctx context.Context, featureIDs []string) (*domain.SiteSet, error) {
	r.advisory()
	ids := domain.NormalizeFeatureIDs(featureIDs)
	if len(ids) == 0 {
		return nil, domain.ErrNoFeatureID
	}
	return r.featureOfInterest(ctx, domain.Selector{FeatureIDs: ids}, "")
}

// waterLevels is the aggregation loop: one blocking Observations call per
// site in request order, rows unioned into one table, metadata rows unioned
// into another, and a single closing FeatureOfInterest call for the location
// table. The first unrecoverable error aborts the whole batch.
func (r *Retriever) waterLevels(ctx context.Context, featureIDs []string, opts Options) (*domain.WaterLevelSet, error) {
	ids := domain.NormalizeFeatureIDs(featureIDs)
	if len(ids) == 0 {
		return nil, domain.ErrNoFeatureID
	}

	set := &domain.WaterLevelSet{
		Metadata: make([]domain.SiteMetadata, 0, len(ids)),
	}
	// Identifiers are retrieved per occurrence: a duplicate in the request
	// is fetched again and contributes its own metadata row.
	for _, id := range ids {
		levels, meta, err := r.site(ctx, id, opts)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", id, err)
		}
		set.Levels = append(set.Levels, levels...)
		set.Metadata = append(set.Metadata, meta)
	}

	sites, _, err := r.importer.FeatureOfInterest(ctx, domain.Selector{FeatureIDs: ids}, "")
	if err != nil {
		return nil, fmt.Errorf("site locations: %w", err)
	}
	set.Sites = sites

	r.logger.Info("water levels retrieved",
		"sites", len(ids),
		"rows", len(set.Levels),
	)
	return set, nil
}

// site retrieves one feature's observations, saves the document's metadata
// attributes into their own row before the merge can discard them, and
// labels every observation row with the bare site number.
func (r *Retriever) site(ctx context.Context, featureID string, opts Options) ([]domain.WaterLevel, domain.SiteMetadata, error) {
	imp, err := r.importer.Observations(ctx, featureID, !opts.RawTimes, opts.Timezone)
	if err != nil {
		return nil, domain.SiteMetadata{}, err
	}

	if len(imp.Levels) == 0 {
		// A site with no data still gets a well-formed metadata row so
		// downstream alignment across sites holds.
		if imp.Attrs == nil {
			imp.Attrs = domain.Attributes{}
		}
		imp.Attrs[domain.AttrIdentifier] = domain.MissingMarker
		imp.Attrs[domain.AttrGenerationDate] = domain.MissingMarker
	}

	saved := domain.SaveAttributes(domain.MetadataAttributes, imp.Attrs)
	domain.StripAttributes(domain.MetadataAttributes, imp.Attrs)

	site := domain.SiteNumber(featureID)
	for i := range imp.Levels {
		imp.Levels[i].Site = site
	}

	return imp.Levels, domain.MetadataRow(featureID, saved), nil
}

// featureOfInterest performs one site-location lookup and annotates the
// result with its request URL and the wall-clock query time.
func (r *Retriever) featureOfInterest(ctx context.Context, sel domain.Selector, srs string) (*domain.SiteSet, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	sites, requestURL, err := r.importer.FeatureOfInterest(ctx, sel, srs)
	if err != nil {
		return nil, err
	}

	r.logger.Info("sites retrieved", "count", len(sites))
	return &domain.SiteSet{
		Sites:     sites,
		URL:       requestURL,
		QueryTime: clock.Now(),
	}, nil
}

// normalizeSelector canonicalizes any feature identifiers a selector
// carries; bounding boxes pass through untouched.
func normalizeSelector(sel domain.Selector) domain.Selector {
	if len(sel.FeatureIDs) > 0 {
		sel.FeatureIDs = domain.NormalizeFeatureIDs(sel.FeatureIDs)
	}
	return sel
}

// advisory flags the provisional status of NGWMN retrievals on every entry
// point, matching the service's own guidance.
func (r *Retriever) advisory() {
	r.logger.Warn("NGWMN data retrieval is provisional: the underlying service and its behavior may change")
}
