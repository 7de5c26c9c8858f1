package dataset

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Lights is the binary lighting state recorded with every sample.
type Lights int

const (
	LightsOn Lights = iota
	LightsOff
)

func (l Lights) String() string {
	switch l {
	case LightsOn:
		return "On"
	case LightsOff:
		return "Off"
	default:
		return fmt.Sprintf("Lights(%d)", int(l))
	}
}

func ParseLights(s string) (Lights, error) {
	switch strings.TrimSpace(s) {
	case "On":
		return LightsOn, nil
	case "Off":
		return LightsOff, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadLights, s)
	}
}

func (l Lights) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Lights) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrBadLights, string(b))
	}
	v, err := ParseLights(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Record is one sample of the activity document.
type Record struct {
	Hours  float64 `json:"hours"`
	MAvg   float64 `json:"mavg"`
	FAvg   float64 `json:"favg"`
	Lights Lights  `json:"lights"`
}

// Diff is male minus female average activity.
func (r Record) Diff() float64 {
	return r.MAvg - r.FAvg
}

// Dataset is the immutable, hours-ordered sequence of records.
type Dataset struct {
	records []Record
}

// New validates ordering and takes its own copy of records.
func New(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	for i := 1; i < len(records); i++ {
		if records[i].Hours <= records[i-1].Hours {
			return nil, fmt.Errorf("%w: record %d has hours %g after %g",
				ErrUnsorted, i, records[i].Hours, records[i-1].Hours)
		}
	}
	own := make([]Record, len(records))
	copy(own, records)
	return &Dataset{records: own}, nil
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) At(i int) Record {
	return d.records[i]
}

// Records returns a copy so callers cannot mutate the loaded data.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Hours returns the time column in dataset order.
func (d *Dataset) Hours() []float64 {
	out := make([]float64, len(d.records))
	for i, r := range d.records {
		out[i] = r.Hours
	}
	return out
}

// MaxHours is the natural upper bound of the time axis.
func (d *Dataset) MaxHours() float64 {
	return d.records[len(d.records)-1].Hours
}
