// Package ngwmn talks to the NGWMN Data Portal Sensor Observation Service
// and reduces its XML documents to domain records.
package ngwmn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jdorvi/dataRetrieval/internal/domain"
	"github.com/jdorvi/dataRetrieval/internal/observability"
)

// Operation names used for logging and metric labels.
const (
	opGetObservation       = "GetObservation"
	opGetFeatureOfInterest = "GetFeatureOfInterest"
)

// Client issues SOS requests against one NGWMN endpoint. Requests are
// one-shot and sequential; a transport or decode failure is returned as-is
// with no retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an NGWMN SOS client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// Observations fetches the groundwater-level time series for one feature
// identifier. With parseTime set, record timestamps are parsed using each
// record's embedded offset (converted to UTC) or the given IANA zone; a
// malformed timestamp yields a *domain.TimeParseError for the caller to
// retry with parsing off. A site with no data returns zero rows and
// placeholder attributes, not an error.
func (c *Client) Observations(ctx context.Context, featureID string, parseTime bool, timezone string) (*domain.ObservationImport, error) {
	mode, err := resolveTimeMode(parseTime, timezone)
	if err != nil {
		return nil, err
	}

	requestURL := c.observationURL(featureID)
	body, err := c.get(ctx, opGetObservation, requestURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	imp, err := decodeObservations(body, requestURL, featureID, mode)
	if err != nil {
		var tpe *domain.TimeParseError
		if errors.As(err, &tpe) {
			c.metrics.TimeParseFailures.Inc()
		}
		return nil, err
	}
	if len(imp.Levels) == 0 {
		c.metrics.EmptyResults.Inc()
		c.logger.Debug("no observations returned", "feature_id", featureID)
	}
	return imp, nil
}

// FeatureOfInterest fetches site locations for an identifier list or a
// bounding box and returns them with the request URL that produced them.
func (c *Client) FeatureOfInterest(ctx context.Context, sel domain.Selector, srs string) ([]domain.Site, string, error) {
	requestURL, err := c.featureOfInterestURL(sel, srs)
	if err != nil {
		return nil, "", err
	}

	body, err := c.get(ctx, opGetFeatureOfInterest, requestURL)
	if err != nil {
		return nil, "", err
	}
	defer body.Close()

	sites, err := decodeFeatures(body)
	if err != nil {
		return nil, "", err
	}
	return sites, requestURL, nil
}

// get performs one blocking GET and returns the response body. Non-200
// statuses are turned into errors, decoding the OWS ExceptionReport when the
// service sent one.
func (c *Client) get(ctx context.Context, operation, requestURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.SOSRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.SOSRequests.WithLabelValues(operation, "error").Inc()
		return nil, fmt.Errorf("%s request: %w", operation, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		c.metrics.SOSRequests.WithLabelValues(operation, "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if msg, ok := decodeException(body); ok {
			return nil, fmt.Errorf("%s: %s", operation, msg)
		}
		return nil, fmt.Errorf("%s: status %d: %s", operation, resp.StatusCode, bytes.TrimSpace(body))
	}

	c.metrics.SOSRequests.WithLabelValues(operation, "success").Inc()
	c.logger.Debug("sos request complete", "operation", operation, "url", requestURL)
	return resp.Body, nil
}
