package fallback

// Entry is a predetermined (total, count) pair served while the
// reservation store is unreachable.
type Entry struct {
	Total string
	Count int64
}

// Dataset maps property ids to degraded figures. It is injected at wiring
// time so deployments can swap the data without touching the aggregator.
type Dataset map[string]Entry

// Default returns the stock degraded dataset.
func Default() Dataset {
	return Dataset{
		"prop-001": {Total: "1000.00", Count: 3},
		"prop-002": {Total: "4975.50", Count: 4},
		"prop-003": {Total: "6100.50", Count: 2},
		"prop-004": {Total: "1776.50", Count: 4},
		"prop-005": {Total: "3256.00", Count: 3},
	}
}

// Lookup returns the entry for a property, or a zero entry for properties
// the dataset does not know.
func (d Dataset) Lookup(propertyID string) Entry {
	if e, ok := d[propertyID]; ok {
		return e
	}
	return Entry{Total: "0.00", Count: 0}
}
