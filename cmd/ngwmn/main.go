// Command ngwmn fetches groundwater levels or monitoring-site locations from
// the NGWMN Data Portal Sensor Observation Service and writes them to stdout
// as JSON or CSV.
//
// Usage:
//
//	ngwmn -service levels -sites USGS:272838082142201,USGS:272842082142701
//	ngwmn -service sites -sites-file wells.yaml -format csv
//	ngwmn -service sites -bbox 30,-99,31,-96
//
// The site-list file is YAML:
//
//	sites:
//	  - USGS:272838082142201
//	  - USGS:272842082142701
//
// Endpoint and logging come from NGWMN_BASE_URL, NGWMN_HTTP_TIMEOUT,
// LOG_LEVEL, and LOG_FORMAT.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jdorvi/dataRetrieval/internal/adapter/ngwmn"
	"github.com/jdorvi/dataRetrieval/internal/config"
	"github.com/jdorvi/dataRetrieval/internal/domain"
	"github.com/jdorvi/dataRetrieval/internal/observability"
	"github.com/jdorvi/dataRetrieval/internal/retrieve"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("ngwmn fetch failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ngwmn", flag.ContinueOnError)
	service := fs.String("service", "levels", "retrieval to perform: levels or sites")
	sitesFlag := fs.String("sites", "", "comma-separated feature identifiers (AGENCY:SITE or AGENCY.SITE)")
	sitesFile := fs.String("sites-file", "", "YAML file listing feature identifiers")
	bboxFlag := fs.String("bbox", "", "bounding box south,west,north,east (sites service only)")
	srs := fs.String("srs", "", "spatial reference URN override for bounding-box lookups")
	rawTimes := fs.Bool("raw-times", false, "keep observation timestamps as raw strings")
	timezone := fs.String("tz", "", "IANA timezone for parsed timestamps (default: each record's offset, as UTC)")
	format := fs.String("format", "json", "output format: json or csv")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	metrics := observability.NewMetrics()

	client := ngwmn.NewClient(cfg.BaseURL, cfg.HTTPTimeout, logger, metrics)
	retriever := retrieve.New(client, logger)

	featureIDs, err := collectSites(*sitesFlag, *sitesFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	opts := retrieve.Options{RawTimes: *rawTimes, Timezone: *timezone, SRS: *srs}

	switch *service {
	case "levels":
		set, err := fetchLevels(ctx, retriever, logger, featureIDs, opts)
		if err != nil {
			return err
		}
		return writeLevels(out, *format, set)
	case "sites":
		set, err := fetchSites(ctx, retriever, featureIDs, *bboxFlag, opts)
		if err != nil {
			return err
		}
		return writeSites(out, *format, set)
	default:
		return fmt.Errorf("unknown -service %q (want levels or sites)", *service)
	}
}

// fetchLevels retrieves water levels, retrying the batch with raw timestamps
// when a site's date field turns out to be malformed.
func fetchLevels(ctx context.Context, r *retrieve.Retriever, logger *slog.Logger, featureIDs []string, opts retrieve.Options) (*domain.WaterLevelSet, error) {
	set, err := r.WaterLevels(ctx, featureIDs, opts)

	var tpe *domain.TimeParseError
	if err != nil && !opts.RawTimes && errors.As(err, &tpe) {
		logger.Warn("malformed observation timestamp, retrying with raw times",
			"feature_id", tpe.FeatureID,
			"raw", tpe.Raw,
		)
		opts.RawTimes = true
		set, err = r.WaterLevels(ctx, featureIDs, opts)
	}
	return set, err
}

func fetchSites(ctx context.Context, r *retrieve.Retriever, featureIDs []string, bboxFlag string, opts retrieve.Options) (*domain.SiteSet, error) {
	if bboxFlag == "" {
		return r.Sites(ctx, featureIDs)
	}

	bbox, err := parseBBox(bboxFlag)
	if err != nil {
		return nil, err
	}
	ds, err := r.Fetch(ctx, retrieve.ServiceFeatureOfInterest,
		domain.Selector{FeatureIDs: featureIDs, BBox: &bbox}, opts)
	if err != nil {
		return nil, err
	}
	return ds.Sites, nil
}

// siteFile is the YAML shape of -sites-file.
type siteFile struct {
	Sites []string `yaml:"sites"`
}

func collectSites(sitesFlag, sitesFilePath string) ([]string, error) {
	var ids []string
	if sitesFlag != "" {
		ids = append(ids, strings.Split(sitesFlag, ",")...)
	}
	if sitesFilePath != "" {
		data, err := os.ReadFile(sitesFilePath)
		if err != nil {
			return nil, fmt.Errorf("read sites file: %w", err)
		}
		var sf siteFile
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("parse sites file: %w", err)
		}
		ids = append(ids, sf.Sites...)
	}
	return ids, nil
}

func parseBBox(s string) (domain.BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return domain.BBox{}, fmt.Errorf("bbox needs four bounds south,west,north,east, got %q", s)
	}
	bounds := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.BBox{}, fmt.Errorf("bbox bound %q: %w", p, err)
		}
		bounds[i] = v
	}
	return domain.BBox{South: bounds[0], West: bounds[1], North: bounds[2], East: bounds[3]}, nil
}

func writeLevels(out io.Writer, format string, set *domain.WaterLevelSet) error {
	if format == "json" {
		return writeJSON(out, set)
	}
	w := csv.NewWriter(out)
	if err := w.Write([]string{"site", "time", "date_time", "value", "unit", "qualifier"}); err != nil {
		return err
	}
	for _, l := range set.Levels {
		var dt, value string
		if l.DateTime != nil {
			dt = l.DateTime.Format(time.RFC3339)
		}
		if l.Value != nil {
			value = strconv.FormatFloat(*l.Value, 'g', -1, 64)
		}
		if err := w.Write([]string{l.Site, l.Time, dt, value, l.Unit, l.Qualifier}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeSites(out io.Writer, format string, set *domain.SiteSet) error {
	if format == "json" {
		return writeJSON(out, set)
	}
	w := csv.NewWriter(out)
	if err := w.Write([]string{"site", "description", "dec_lat_va", "dec_lon_va"}); err != nil {
		return err
	}
	for _, s := range set.Sites {
		row := []string{
			s.Site,
			s.Description,
			strconv.FormatFloat(s.Latitude, 'g', -1, 64),
			strconv.FormatFloat(s.Longitude, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
