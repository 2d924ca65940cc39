package metrics

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/htmlnode/internal/errors"
)

func TestObserveSuccess(t *testing.T) {
	r := New()

	r.Observe(Observation{Nodes: 5, Depth: 3, Bytes: 120, Duration: 2 * time.Millisecond})
	r.Observe(Observation{Nodes: 2, Depth: 1, Bytes: 10, Duration: time.Millisecond})

	if got := testutil.ToFloat64(r.rendersTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("renders_total{status=success} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.nodesRendered); got != 7 {
		t.Errorf("nodes_rendered_total = %v, want 7", got)
	}
	if got := testutil.CollectAndCount(r.renderErrors); got != 0 {
		t.Errorf("render_errors_total series = %d, want 0", got)
	}
}

func TestObserveError(t *testing.T) {
	r := New()

	r.Observe(Observation{Duration: time.Millisecond, Err: errors.New(errors.CodeMissingTag)})
	r.Observe(Observation{Duration: time.Millisecond, Err: stderrors.New("disk full")})

	if got := testutil.ToFloat64(r.rendersTotal.WithLabelValues("error")); got != 2 {
		t.Errorf("renders_total{status=error} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.renderErrors.WithLabelValues(errors.CodeMissingTag)); got != 1 {
		t.Errorf("render_errors_total{code=H002} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.renderErrors.WithLabelValues("internal")); got != 1 {
		t.Errorf("render_errors_total{code=internal} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.nodesRendered); got != 0 {
		t.Errorf("nodes_rendered_total = %v, want 0 after failures", got)
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.Observe(Observation{Nodes: 1})
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "m.prom")); err != nil {
		t.Errorf("nil recorder WriteTextfile: %v", err)
	}

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("nil recorder Gather: %v", err)
	}
	if len(families) != 0 {
		t.Errorf("nil recorder gathered %d families, want 0", len(families))
	}
}

func TestOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(
		WithNamespace("site"),
		WithConstLabels(prometheus.Labels{"job": "build"}),
		WithBuckets([]float64{0.001, 0.01}),
		WithRegistry(reg),
	)
	r.Observe(Observation{Nodes: 1, Depth: 1, Bytes: 4})

	expected := `
# HELP site_nodes_rendered_total Total number of nodes in successfully rendered trees
# TYPE site_nodes_rendered_total counter
site_nodes_rendered_total{job="build"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "site_nodes_rendered_total"); err != nil {
		t.Error(err)
	}
	if r.Gatherer() != reg {
		t.Error("Gatherer should return the configured registry")
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	a := New()
	b := New()
	a.Observe(Observation{Nodes: 3})

	if got := testutil.ToFloat64(b.nodesRendered); got != 0 {
		t.Errorf("second recorder saw %v nodes, want 0", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.Observe(Observation{Nodes: 4, Depth: 2, Bytes: 64, Duration: time.Millisecond})

	path := filepath.Join(t.TempDir(), "htmlnode.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`htmlnode_renders_total{status="success"} 1`,
		"htmlnode_nodes_rendered_total 4",
		"htmlnode_render_duration_seconds_count 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q:\n%s", want, data)
		}
	}

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "m.prom"))
	if !stderrors.Is(err, errors.New(errors.CodeMetricsWrite)) {
		t.Errorf("expected %s, got %v", errors.CodeMetricsWrite, err)
	}
}
