package storage

import (
	"encoding/json"
	"os"
	"time"

	"github.com/plasmakit/tokaval/internal/checks"
	"github.com/plasmakit/tokaval/internal/mhd"
)

// ExportData is the machine-readable rendering of a full validation run.
type ExportData struct {
	Preset                string         `json:"preset"`
	Timestamp             time.Time      `json:"timestamp"`
	Stable                bool           `json:"stable"`
	DisruptionProbability float64        `json:"disruption_probability"`
	Modes                 []ModeExport   `json:"modes"`
	Engineering           []checks.Check `json:"engineering,omitempty"`
	Lawson                []checks.Check `json:"lawson,omitempty"`
}

type ModeExport struct {
	Mode      string  `json:"mode"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	Verdict   string  `json:"verdict"`
	Margin    float64 `json:"margin"`
}

// NewExportData assembles the export record from a stability report and
// optional check suites.
func NewExportData(preset string, rep mhd.Report, eng, law []checks.Check) ExportData {
	data := ExportData{
		Preset:                preset,
		Timestamp:             time.Now(),
		Stable:                rep.Stable,
		DisruptionProbability: rep.DisruptionProbability,
		Modes:                 make([]ModeExport, 0, len(rep.Results)),
		Engineering:           eng,
		Lawson:                law,
	}
	for _, res := range rep.Results {
		data.Modes = append(data.Modes, ModeExport{
			Mode:      string(res.Mode),
			Value:     res.Value,
			Threshold: res.Threshold,
			Verdict:   res.Verdict.String(),
			Margin:    res.Margin(),
		})
	}
	return data
}

// ExportJSON writes the record to a file.
func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSONStdout writes the record to standard output.
func ExportJSONStdout(data ExportData) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
