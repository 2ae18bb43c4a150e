// Package domain models National Ground-Water Monitoring Network (NGWMN)
// water-level and site data.
//
// # Data Source
//
// Data comes from the NGWMN Data Portal's Sensor Observation Service (SOS),
// an OGC SOS 2.0.0 endpoint. GetObservation returns WaterML2 time series of
// groundwater levels; GetFeatureOfInterest returns GML descriptions of
// monitoring sites. The adapter package reduces both to the flat records
// defined here.
//
// # Feature Identifiers
//
// A monitoring site is identified by an agency code plus a site number:
//
//	"USGS.272838082142201"  or  "USGS:272838082142201"
//
// Both separators appear in the wild; [NormalizeFeatureIDs] canonicalizes to
// the period form the service expects and silently drops blank entries.
// [SiteNumber] strips the agency code, leaving the bare site number that
// labels each water-level row.
//
// # Metadata Attributes
//
// Each GetObservation document carries a small set of named string
// attributes alongside the time series:
//
//	url, identifier, generationDate, responsibleParty, contact
//
// Row-wise merging of per-site results would normally discard these, so they
// are saved into a [SiteMetadata] row per site before merging and reattached
// on the combined [WaterLevelSet]. A site that returns no observations still
// contributes a metadata row, with identifier and generationDate set to
// [MissingMarker], so the metadata table always has one row per requested
// site.
//
// # Timestamps
//
// The service reports observation times as RFC 3339 strings carrying each
// record's local UTC offset. When time parsing is enabled the default is to
// apply that embedded offset and convert to UTC; an IANA zone name may be
// supplied instead. A handful of sites ship malformed date fields; parsing
// those yields a [TimeParseError] so the caller can retry the batch with
// parsing disabled rather than lose it.
package domain
