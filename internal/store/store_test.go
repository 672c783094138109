package store

import (
	"testing"
	"time"

	"github.com/san-kum/deeporbit/internal/nearearth"
	"github.com/san-kum/deeporbit/internal/orbit"
)

func testSamples() []nearearth.Sample {
	samples := make([]nearearth.Sample, 5)
	for i := range samples {
		samples[i] = nearearth.Sample{
			T: float64(i) * 60.0,
			Elements: orbit.Elements{
				Eccentricity: 0.001 + float64(i)*1e-6,
				Inclination:  0.01,
				MeanAnomaly:  float64(i) * 0.26,
				RAAN:         1.3963,
				ArgPerigee:   0.7854,
				MeanMotion:   0.0043752691,
			},
		}
	}
	return samples
}

func testMeta() RunMetadata {
	return RunMetadata{
		Name:   "geostationary",
		Epoch:  time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC),
		Regime: "synchronous",
		Start:  0, Stop: 240, Step: 60,
		Metrics: map[string]float64{"validity": 1.0},
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := s.Save(testMeta(), testSamples())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("id mismatch: %s vs %s", meta.ID, runID)
	}
	if meta.Regime != "synchronous" {
		t.Errorf("regime mismatch: %s", meta.Regime)
	}
	if meta.Metrics["validity"] != 1.0 {
		t.Errorf("metrics not preserved: %+v", meta.Metrics)
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	if _, err := s.Save(testMeta(), testSamples()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Name != "geostationary" {
		t.Errorf("unexpected run name: %s", runs[0].Name)
	}
}

func TestListMissingBaseDir(t *testing.T) {
	s := New(t.TempDir() + "/never-created")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadSeries(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	samples := testSamples()
	runID, err := s.Save(testMeta(), samples)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	times, cols, err := s.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(times) != len(samples) {
		t.Fatalf("expected %d rows, got %d", len(samples), len(times))
	}

	for _, col := range []string{"eccentricity", "inclination", "mean_anomaly", "raan", "arg_perigee", "mean_motion"} {
		if len(cols[col]) != len(samples) {
			t.Errorf("column %s has %d rows, expected %d", col, len(cols[col]), len(samples))
		}
	}

	if times[2] != 120.0 {
		t.Errorf("expected t=120 at row 2, got %g", times[2])
	}
	if got := cols["mean_anomaly"][3]; got < 0.7 || got > 0.9 {
		t.Errorf("mean anomaly column corrupted: %g", got)
	}
}
