package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/plasmakit/tokaval/internal/mhd"
	"github.com/plasmakit/tokaval/internal/plasma"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	rep := mhd.Run(plasma.Reference(), mhd.DefaultLimits())

	runID, err := st.Save("gsm", rep)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Preset != "gsm" {
		t.Errorf("expected preset gsm, got %s", meta.Preset)
	}
	if meta.Stable != rep.Stable {
		t.Errorf("expected stable %v, got %v", rep.Stable, meta.Stable)
	}
	if meta.DisruptionProbability != rep.DisruptionProbability {
		t.Error("disruption probability should round-trip")
	}
}

func TestStoreLoadResults(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	rep := mhd.Run(plasma.Reference(), mhd.DefaultLimits())
	runID, err := st.Save("gsm", rep)
	if err != nil {
		t.Fatal(err)
	}

	results, err := st.LoadResults(runID)
	if err != nil {
		t.Fatalf("load results failed: %v", err)
	}
	if len(results) != len(rep.Results) {
		t.Fatalf("expected %d results, got %d", len(rep.Results), len(results))
	}
	for i, res := range results {
		want := rep.Results[i]
		if res.Mode != want.Mode {
			t.Errorf("row %d: expected mode %s, got %s", i, want.Mode, res.Mode)
		}
		if res.Verdict != want.Verdict {
			t.Errorf("row %d: expected verdict %v, got %v", i, want.Verdict, res.Verdict)
		}
		if res.Value != want.Value {
			t.Errorf("row %d: value should round-trip exactly, got %g want %g", i, res.Value, want.Value)
		}
	}
}

func TestStoreMarginRoundTrip(t *testing.T) {
	// The sawtooth check is a floor criterion: q0 above the threshold
	// means positive margin. The sign must survive save and reload.
	eq, err := plasma.New(plasma.Equilibrium{
		MajorRadius: 11.09, MinorRadius: 2.62, Field: 24.6,
		Current: 25.3e6, Beta: 0.0163,
		Q0: 1.2, Q95: 3.0, Elongation: 1.7, Triangularity: 0.4,
	})
	if err != nil {
		t.Fatal(err)
	}

	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	rep := mhd.Run(eq, mhd.DefaultLimits())
	runID, err := st.Save("gsm", rep)
	if err != nil {
		t.Fatal(err)
	}

	results, err := st.LoadResults(runID)
	if err != nil {
		t.Fatal(err)
	}
	for i, res := range results {
		want := rep.Results[i]
		if res.FloorCriterion != want.FloorCriterion {
			t.Errorf("row %d (%s): floor criterion should round-trip", i, res.Mode)
		}
		if res.Margin() != want.Margin() {
			t.Errorf("row %d (%s): margin %g after reload, want %g", i, res.Mode, res.Margin(), want.Margin())
		}
	}

	loaded, ok := mhd.Report{Results: results}.Result(mhd.ModeSawtooth)
	if !ok {
		t.Fatal("expected a sawtooth row")
	}
	if loaded.Margin() <= 0 {
		t.Errorf("q0 = 1.2 has headroom above the floor, got margin %g", loaded.Margin())
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	rep := mhd.Run(plasma.Reference(), mhd.DefaultLimits())
	if _, err := st.Save("gsm", rep); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing base dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	rep := mhd.Run(plasma.Reference(), mhd.DefaultLimits())
	data := NewExportData("gsm", rep, nil, nil)

	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, data); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded ExportData
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("exported file should be valid json: %v", err)
	}
	if len(decoded.Modes) != len(rep.Results) {
		t.Errorf("expected %d modes, got %d", len(rep.Results), len(decoded.Modes))
	}
	if decoded.Stable != rep.Stable {
		t.Error("stable flag should round-trip")
	}
}
