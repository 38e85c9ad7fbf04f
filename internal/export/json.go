package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/forcelab/internal/scenario"
)

// SweepData is the JSON form of a parameter sweep.
type SweepData struct {
	Problem string                `json:"problem"`
	Param   string                `json:"param"`
	Points  []scenario.SweepPoint `json:"points"`
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func WriteJSONFile(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, v)
}

func WriteSVGFile(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
