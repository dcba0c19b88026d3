package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRun(t *testing.T) {
	r := NewRegistry()
	r.RecordRun("ga", true, 20*time.Millisecond, 12.5, 3)
	r.RecordRun("ga", false, time.Millisecond, 0, 0)
	r.RecordRun("ql", true, time.Millisecond, 9, 2)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("ga", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("ga", OutcomeNoPath)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("ql", OutcomeFound)))
	assert.Equal(t, 2, testutil.CollectAndCount(r.RouteCost))
	assert.Equal(t, 2, testutil.CollectAndCount(r.RunDuration))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.SetNetwork(10, 20)
	r.RecordRun("ga", true, time.Millisecond, 1, 1)

	path := filepath.Join(t.TempDir(), "netpath.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "netpath_network_edges 20")
	assert.Contains(t, string(data), `netpath_runs_total{algorithm="ga",outcome="found"} 1`)
}
