package dataset

// DifferenceRecord is the derived per-sample male minus female value.
type DifferenceRecord struct {
	Hours  float64
	Diff   float64
	Lights Lights
}

// BuildDifference maps every record positionally to its difference record.
func BuildDifference(d *Dataset) []DifferenceRecord {
	out := make([]DifferenceRecord, d.Len())
	for i, r := range d.records {
		out[i] = DifferenceRecord{
			Hours:  r.Hours,
			Diff:   r.Diff(),
			Lights: r.Lights,
		}
	}
	return out
}
