package ngwmn

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdorvi/dataRetrieval/internal/domain"
)

func urlClient() *Client {
	return &Client{baseURL: "https://example.test/sos"}
}

func mustParseQuery(t *testing.T, rawURL string) url.Values {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Query()
}

func TestObservationURL(t *testing.T) {
	got := urlClient().observationURL("USGS.272838082142201")
	q := mustParseQuery(t, got)

	assert.Equal(t, "SOS", q.Get("service"))
	assert.Equal(t, "2.0.0", q.Get("version"))
	assert.Equal(t, "GetObservation", q.Get("request"))
	assert.Equal(t, "text/xml", q.Get("responseFormat"))
	assert.Equal(t, "urn:ogc:def:property:OGC:GroundWaterLevel", q.Get("observedProperty"))
	assert.Equal(t, "VW_GWDP_GEOSERVER.USGS.272838082142201", q.Get("featureOfInterest"))

	// Values must be percent-encoded in the raw URL.
	assert.Contains(t, got, "responseFormat=text%2Fxml")
	assert.Contains(t, got, "urn%3Aogc%3Adef%3Aproperty%3AOGC%3AGroundWaterLevel")
}

func TestFeatureOfInterestURL(t *testing.T) {
	c := urlClient()

	t.Run("identifier list is prefixed and joined", func(t *testing.T) {
		got, err := c.featureOfInterestURL(domain.Selector{
			FeatureIDs: []string{"USGS.272838082142201", "USGS.263819081585801"},
		}, "")
		require.NoError(t, err)

		q := mustParseQuery(t, got)
		assert.Equal(t, "GetFeatureOfInterest", q.Get("request"))
		assert.Equal(t,
			"VW_GWDP_GEOSERVER.USGS.272838082142201,VW_GWDP_GEOSERVER.USGS.263819081585801",
			q.Get("featureOfInterest"))
		assert.Empty(t, q.Get("bbox"))
	})

	t.Run("bounding box with default SRS", func(t *testing.T) {
		got, err := c.featureOfInterestURL(domain.Selector{
			BBox: &domain.BBox{South: 30, West: -99, North: 31, East: -96},
		}, "")
		require.NoError(t, err)

		q := mustParseQuery(t, got)
		assert.Equal(t, "30,-99,31,-96", q.Get("bbox"))
		assert.Equal(t, DefaultSRS, q.Get("srsName"))
		assert.Empty(t, q.Get("featureOfInterest"))
	})

	t.Run("SRS override", func(t *testing.T) {
		got, err := c.featureOfInterestURL(domain.Selector{
			BBox: &domain.BBox{South: 30, West: -99, North: 31, East: -96},
		}, "urn:ogc:def:crs:EPSG::4326")
		require.NoError(t, err)

		q := mustParseQuery(t, got)
		assert.Equal(t, "urn:ogc:def:crs:EPSG::4326", q.Get("srsName"))
	})

	t.Run("no selector fails before any request", func(t *testing.T) {
		_, err := c.featureOfInterestURL(domain.Selector{}, "")
		assert.ErrorIs(t, err, domain.ErrNoSelector)
	})

	t.Run("conflicting selector fails", func(t *testing.T) {
		_, err := c.featureOfInterestURL(domain.Selector{
			FeatureIDs: []string{"USGS.1"},
			BBox:       &domain.BBox{},
		}, "")
		assert.ErrorIs(t, err, domain.ErrConflictingSelector)
	})
}
