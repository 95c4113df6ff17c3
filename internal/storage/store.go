package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/plasmakit/tokaval/internal/mhd"
)

// Store persists validation runs under a base directory, one subdirectory
// per run: metadata.json plus a modes.csv with the per-mode rows.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID                    string    `json:"id"`
	Preset                string    `json:"preset"`
	Timestamp             time.Time `json:"timestamp"`
	Stable                bool      `json:"stable"`
	DisruptionProbability float64   `json:"disruption_probability"`
}

// Save writes one stability report and returns its run id.
func (s *Store) Save(preset string, rep mhd.Report) (string, error) {
	runID := fmt.Sprintf("%s_%d", preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:                    runID,
		Preset:                preset,
		Timestamp:             time.Now(),
		Stable:                rep.Stable,
		DisruptionProbability: rep.DisruptionProbability,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "modes.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"mode", "value", "threshold", "margin", "verdict", "floor"}); err != nil {
		return "", err
	}
	for _, res := range rep.Results {
		row := []string{
			string(res.Mode),
			strconv.FormatFloat(res.Value, 'g', -1, 64),
			strconv.FormatFloat(res.Threshold, 'g', -1, 64),
			strconv.FormatFloat(res.Margin(), 'g', -1, 64),
			res.Verdict.String(),
			strconv.FormatBool(res.FloorCriterion),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

// Load returns one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResults reads the per-mode rows back from modes.csv.
func (s *Store) LoadResults(runID string) ([]mhd.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "modes.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []mhd.Result{}, nil
	}

	results := make([]mhd.Result, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 6 {
			continue
		}
		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		threshold, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		floor, err := strconv.ParseBool(record[5])
		if err != nil {
			continue
		}
		results = append(results, mhd.Result{
			Mode:           mhd.Mode(record[0]),
			Value:          value,
			Threshold:      threshold,
			Verdict:        parseVerdict(record[4]),
			FloorCriterion: floor,
		})
	}
	return results, nil
}

func parseVerdict(s string) mhd.Verdict {
	switch s {
	case "stable":
		return mhd.Stable
	case "n/a":
		return mhd.NotApplicable
	default:
		return mhd.Unstable
	}
}
