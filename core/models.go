package core

// Point is a single vector record to ingest.
// Ids are caller-supplied opaque strings, forwarded verbatim to the store;
// this system never validates them for uniqueness or format.
type Point struct {
	ID      string
	Vector  []float32      // Embedding components, single precision
	Payload map[string]any // Arbitrary document attached to the point, forwarded as-is
}

// Dataset is a parsed input file: an ordered sequence of points.
// It is constructed once by the input loader and never mutated afterwards;
// consumers take subslices of Points rather than copying.
type Dataset struct {
	Points []Point
}

// Len returns the number of points in the dataset.
func (d *Dataset) Len() int {
	return len(d.Points)
}
