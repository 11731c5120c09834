package types

// Record is a single (label, secret) pair held by the store.
type Record struct {
	Label  string
	Secret string
}

// String returns the label only, so secrets never end up in log lines by accident.
func (r Record) String() string { return r.Label }

// CloneRecords returns a copy of recs that shares no backing array with it.
func CloneRecords(recs []Record) []Record {
	out := make([]Record, len(recs))
	copy(out, recs)
	return out
}
