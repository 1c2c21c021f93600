package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/rootfind/internal/secant"
)

type ExportData struct {
	Run        RunMetadata       `json:"run"`
	Iterations []ExportIteration `json:"iterations"`
}

type ExportIteration struct {
	Iter int     `json:"iter"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Dx   float64 `json:"dx"`
	X    float64 `json:"x"`
	Flat bool    `json:"flat,omitempty"`
}

func newExportData(meta RunMetadata, trace *secant.Trace[float64]) ExportData {
	data := ExportData{Run: meta, Iterations: []ExportIteration{}}
	if trace == nil {
		return data
	}
	for _, it := range trace.Iterations {
		data.Iterations = append(data.Iterations, ExportIteration{
			Iter: it.Iter, X0: it.X0, Y0: it.Y0, X1: it.X1, Y1: it.Y1, Dx: it.Dx, X: it.X, Flat: it.Flat,
		})
	}
	return data
}

func WriteJSON(w io.Writer, meta RunMetadata, trace *secant.Trace[float64]) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(meta, trace))
}

func ExportJSON(path string, meta RunMetadata, trace *secant.Trace[float64]) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, meta, trace)
}
