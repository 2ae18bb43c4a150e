package ngwmn

import (
	"net/url"
	"strings"

	"github.com/jdorvi/dataRetrieval/internal/domain"
)

// DefaultBaseURL is the production NGWMN Data Portal SOS endpoint.
const DefaultBaseURL = "https://cida.usgs.gov/ngwmn_cache/sos"

// DefaultSRS is the spatial reference applied to bounding-box queries unless
// overridden (NAD83, the datum NGWMN publishes coordinates in).
const DefaultSRS = "urn:ogc:def:crs:EPSG::4269"

// Fixed protocol parameters of the NGWMN SOS deployment.
const (
	sosService       = "SOS"
	sosVersion       = "2.0.0"
	sosFormat        = "text/xml"
	groundWaterLevel = "urn:ogc:def:property:OGC:GroundWaterLevel"

	// featureView is the GeoServer view name the service expects prefixed
	// onto every feature identifier.
	featureView = "VW_GWDP_GEOSERVER"
)

// observationURL builds the GetObservation request for one feature
// identifier. All values pass through url.Values and arrive percent-encoded.
func (c *Client) observationURL(featureID string) string {
	params := url.Values{}
	params.Set("service", sosService)
	params.Set("version", sosVersion)
	params.Set("request", "GetObservation")
	params.Set("observedProperty", groundWaterLevel)
	params.Set("responseFormat", sosFormat)
	params.Set("featureOfInterest", featureView+"."+featureID)
	return c.baseURL + "?" + params.Encode()
}

// featureOfInterestURL builds the GetFeatureOfInterest request for either an
// identifier list or a bounding box. Supplying neither or both is a
// configuration error caught before any request is issued.
func (c *Client) featureOfInterestURL(sel domain.Selector, srs string) (string, error) {
	if err := sel.Validate(); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("service", sosService)
	params.Set("version", sosVersion)
	params.Set("request", "GetFeatureOfInterest")
	params.Set("responseFormat", sosFormat)

	if len(sel.FeatureIDs) > 0 {
		prefixed := make([]string, len(sel.FeatureIDs))
		for i, id := range sel.FeatureIDs {
			prefixed[i] = featureView + "." + id
		}
		params.Set("featureOfInterest", strings.Join(prefixed, ","))
	} else {
		if srs == "" {
			srs = DefaultSRS
		}
		params.Set("bbox", sel.BBox.String())
		params.Set("srsName", srs)
	}

	return c.baseURL + "?" + params.Encode(), nil
}
