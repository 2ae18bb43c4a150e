package ngwmn

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jdorvi/dataRetrieval/internal/domain"
)

// timeMode holds the resolved time-parsing settings for one batch. A nil
// location means each record keeps its embedded UTC offset and is converted
// to UTC.
type timeMode struct {
	parse bool
	loc   *time.Location
}

func resolveTimeMode(parse bool, timezone string) (timeMode, error) {
	if !parse || timezone == "" {
		return timeMode{parse: parse}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return timeMode{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return timeMode{parse: true, loc: loc}, nil
}

func (m timeMode) convert(t time.Time) time.Time {
	if m.loc != nil {
		return t.In(m.loc)
	}
	return t.UTC()
}

// decodeObservations reduces a GetObservation document to water-level rows
// plus the attributes the payload exposes. The request URL is always
// recorded; a document with no observation members yields zero rows and
// placeholder attributes. Timestamps that fail to parse while parsing is on
// surface as *domain.TimeParseError so callers can retry the batch raw.
func decodeObservations(r io.Reader, requestURL, featureID string, mode timeMode) (*domain.ObservationImport, error) {
	var doc getObservationResponse
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode GetObservation response: %w", err)
	}

	imp := &domain.ObservationImport{
		Attrs: domain.Attributes{domain.AttrURL: requestURL},
	}
	if len(doc.Observations) == 0 {
		return imp, nil
	}

	first := doc.Observations[0]
	setAttr(imp.Attrs, domain.AttrIdentifier, first.Identifier)
	setAttr(imp.Attrs, domain.AttrGenerationDate, first.Metadata.GenerationDate)
	setAttr(imp.Attrs, domain.AttrResponsibleParty, first.Metadata.ResponsibleParty)
	setAttr(imp.Attrs, domain.AttrContact, first.Metadata.Contact)

	for _, obs := range doc.Observations {
		unit := strings.TrimSpace(obs.Series.Unit.Code)
		for _, p := range obs.Series.Points {
			level := domain.WaterLevel{
				Time:      strings.TrimSpace(p.Time),
				Unit:      unit,
				Qualifier: strings.TrimSpace(p.Qualifier),
			}
			if raw := strings.TrimSpace(p.Value); raw != "" {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("parse observation value %q for %s: %w", raw, featureID, err)
				}
				level.Value = &v
			}
			if mode.parse {
				t, err := time.Parse(time.RFC3339, level.Time)
				if err != nil {
					return nil, &domain.TimeParseError{FeatureID: featureID, Raw: level.Time, Err: err}
				}
				converted := mode.convert(t)
				level.DateTime = &converted
			}
			imp.Levels = append(imp.Levels, level)
		}
	}
	return imp, nil
}

// setAttr records an attribute only when the payload carried it; absent
// fields stay unset rather than defaulted.
func setAttr(attrs domain.Attributes, name, value string) {
	if value = strings.TrimSpace(value); value != "" {
		attrs[name] = value
	}
}

// decodeFeatures reduces a GetFeatureOfInterest document to location rows.
// Feature identifiers come back with the GeoServer view prefix, which is
// stripped to recover the agency.site form.
func decodeFeatures(r io.Reader) ([]domain.Site, error) {
	var doc featureOfInterestResponse
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode GetFeatureOfInterest response: %w", err)
	}

	sites := make([]domain.Site, 0, len(doc.Features))
	for _, f := range doc.Features {
		id := strings.TrimPrefix(strings.TrimSpace(f.Identifier), featureView+".")
		lat, lon, err := parsePos(f.Pos)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", id, err)
		}
		sites = append(sites, domain.Site{
			Site:        id,
			Description: strings.TrimSpace(f.Name),
			Latitude:    lat,
			Longitude:   lon,
		})
	}
	return sites, nil
}

// parsePos splits a gml:pos "lat lon" pair.
func parsePos(pos string) (float64, float64, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed position %q", pos)
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed latitude %q", fields[0])
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed longitude %q", fields[1])
	}
	return lat, lon, nil
}

// decodeException turns an OWS ExceptionReport body into a readable error,
// or reports that the body was not one.
func decodeException(body []byte) (string, bool) {
	var report exceptionReport
	if err := xml.Unmarshal(body, &report); err != nil || len(report.Exceptions) == 0 {
		return "", false
	}
	exc := report.Exceptions[0]
	msg := fmt.Sprintf("service exception [%s]", exc.Code)
	if len(exc.Text) > 0 {
		msg += ": " + strings.Join(exc.Text, " | ")
	}
	return msg, true
}
