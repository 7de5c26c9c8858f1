package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andareed/siftly-activity/logging"
	"github.com/go-resty/resty/v2"
)

const DefaultSource = "data.json"

// Loader fetches the activity document exactly once per call. There is no
// retry: a failed fetch is reported to the caller.
type Loader struct {
	baseURL string
	client  *resty.Client
}

// NewLoader returns a loader. Relative sources are resolved against baseURL
// when it is set, otherwise they are read from the local filesystem.
func NewLoader(baseURL string, timeout time.Duration) *Loader {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if baseURL != "" {
		client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
	return &Loader{baseURL: baseURL, client: client}
}

func (l *Loader) Load(ctx context.Context, source string) (*Dataset, error) {
	if source == "" {
		source = DefaultSource
	}
	var (
		body []byte
		err  error
	)
	if isURL(source) || l.baseURL != "" {
		body, err = l.fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	ds, err := Parse(body)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	logging.Infof("dataset: loaded %d records from %s (max hours %g)", ds.Len(), source, ds.MaxHours())
	return ds, nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	path := source
	if !isURL(source) {
		path = "/" + strings.TrimLeft(source, "/")
	}
	logging.Debugf("dataset: GET %s", path)
	resp, err := l.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

type rawRecord struct {
	Hours  *float64 `json:"hours"`
	MAvg   *float64 `json:"mavg"`
	FAvg   *float64 `json:"favg"`
	Lights *Lights  `json:"lights"`
}

// Parse decodes the JSON array document into a validated Dataset.
func Parse(data []byte) (*Dataset, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	records := make([]Record, 0, len(raw))
	for i, r := range raw {
		if r.Hours == nil || r.MAvg == nil || r.FAvg == nil || r.Lights == nil {
			return nil, fmt.Errorf("record %d: missing field (want hours, mavg, favg, lights)", i)
		}
		records = append(records, Record{
			Hours:  *r.Hours,
			MAvg:   *r.MAvg,
			FAvg:   *r.FAvg,
			Lights: *r.Lights,
		})
	}
	return New(records)
}
