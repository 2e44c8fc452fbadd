package upload

import (
	"encoding/json"
	"fmt"
	"io"
)

// ProgressEvent is the payload of a progress line, one per completed batch.
type ProgressEvent struct {
	Batch  int `json:"batch"`
	Total  int `json:"total"`
	Points int `json:"points"`
}

// DoneEvent is the payload of the final line of a run.
type DoneEvent struct {
	TotalPoints int `json:"total_points"`
}

// Reporter emits machine-readable progress lines for a batch upload.
// Each completed batch produces one line of the form
//
//	progress:{"batch":1,"total":3,"points":100}
//
// and the end of the run produces
//
//	done:{"total_points":250}
//
// The reporter is driven by the single goroutine running the batch loop.
type Reporter struct {
	out   io.Writer
	total int
	batch int
}

// NewReporter creates a reporter for a run of totalBatches batches.
// out: where to write progress lines (typically os.Stdout)
func NewReporter(out io.Writer, totalBatches int) *Reporter {
	return &Reporter{
		out:   out,
		total: totalBatches,
	}
}

// BatchCompleted records one more finished batch of the given size and emits
// its progress line. Batches are numbered from 1 in completion order.
func (r *Reporter) BatchCompleted(points int) {
	r.batch++

	payload, _ := json.Marshal(ProgressEvent{
		Batch:  r.batch,
		Total:  r.total,
		Points: points,
	})
	fmt.Fprintf(r.out, "progress:%s\n", payload)
}

// Done emits the final line carrying the total number of points uploaded.
func (r *Reporter) Done(totalPoints int) {
	payload, _ := json.Marshal(DoneEvent{TotalPoints: totalPoints})
	fmt.Fprintf(r.out, "done:%s\n", payload)
}
