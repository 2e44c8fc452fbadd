package upload

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_ProgressLines(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, 3)

	reporter.BatchCompleted(100)
	reporter.BatchCompleted(100)
	reporter.BatchCompleted(50)
	reporter.Done(250)

	want := `progress:{"batch":1,"total":3,"points":100}
progress:{"batch":2,"total":3,"points":100}
progress:{"batch":3,"total":3,"points":50}
done:{"total_points":250}
`
	assert.Equal(t, want, buf.String(), "lines should match the wire format exactly")
}

func TestReporter_ZeroBatches(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, 0)

	reporter.Done(0)

	assert.Equal(t, "done:{\"total_points\":0}\n", buf.String(), "an empty run still gets a done line")
}

func TestReporter_BatchNumbering(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, 5)

	for i := 0; i < 5; i++ {
		reporter.BatchCompleted(10)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	for i, line := range lines {
		var event ProgressEvent
		payload, found := strings.CutPrefix(line, "progress:")
		require.True(t, found, "every line should carry the progress prefix")
		require.NoError(t, json.Unmarshal([]byte(payload), &event))

		assert.Equal(t, i+1, event.Batch, "batch numbers should increase by one")
		assert.Equal(t, 5, event.Total, "total should be constant across the run")
	}
}
