package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/rootfind/internal/secant"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

var traceHeader = []string{"iter", "x0", "y0", "x1", "y1", "dx", "x", "flat"}

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
	ID            string    `json:"id"`
	Problem       string    `json:"problem"`
	Timestamp     time.Time `json:"timestamp"`
	InitialGuess  float64   `json:"initial_guess"`
	Precision     int       `json:"precision"`
	Tolerance     float64   `json:"tolerance"`
	Step          float64   `json:"step"`
	MaxIterations int       `json:"max_iterations"`
	Converged     bool      `json:"converged"`
	X             float64   `json:"x"`
	Iter          int       `json:"iter"`
	Evaluations   int       `json:"evaluations"`
	Error         string    `json:"error,omitempty"`
}

// Save writes metadata.json and trace.csv into a fresh run directory. ID and
// Timestamp are filled in when empty. trace may be nil.
func (s *Store) Save(meta RunMetadata, trace *secant.Trace[float64]) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Problem, meta.Timestamp.UnixNano())
	}

	if err := s.Init(); err != nil {
		return "", err
	}

	// The run only becomes visible once both files are complete.
	tmpDir, err := os.MkdirTemp(s.baseDir, ".save-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)
	if err := os.Chmod(tmpDir, 0755); err != nil {
		return "", err
	}

	if err := writeMetadata(filepath.Join(tmpDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeTrace(filepath.Join(tmpDir, traceFile), trace); err != nil {
		return "", err
	}

	if err := os.Rename(tmpDir, filepath.Join(s.baseDir, meta.ID)); err != nil {
		return "", err
	}

	return meta.ID, nil
}

func writeMetadata(path string, meta RunMetadata) error {
	metaFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("storage: encode metadata: %w", err)
	}
	return nil
}

func writeTrace(path string, trace *secant.Trace[float64]) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(traceHeader); err != nil {
		return err
	}

	if trace != nil {
		for _, it := range trace.Iterations {
			row := []string{
				strconv.Itoa(it.Iter),
				formatFloat(it.X0),
				formatFloat(it.Y0),
				formatFloat(it.X1),
				formatFloat(it.Y1),
				formatFloat(it.Dx),
				formatFloat(it.X),
				strconv.FormatBool(it.Flat),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode metadata %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) (*secant.Trace[float64], error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(traceHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: read trace %s: %w", runID, err)
	}

	trace := &secant.Trace[float64]{}
	for i := 1; i < len(records); i++ {
		it, err := parseIteration(records[i])
		if err != nil {
			return nil, fmt.Errorf("storage: trace %s line %d: %w", runID, i+1, err)
		}
		trace.OnIteration(it)
	}

	return trace, nil
}

func parseIteration(record []string) (secant.Iteration[float64], error) {
	var it secant.Iteration[float64]

	iter, err := strconv.Atoi(record[0])
	if err != nil {
		return it, err
	}
	it.Iter = iter

	fields := []*float64{&it.X0, &it.Y0, &it.X1, &it.Y1, &it.Dx, &it.X}
	for j, dst := range fields {
		v, err := strconv.ParseFloat(record[j+1], 64)
		if err != nil {
			return it, err
		}
		*dst = v
	}

	flat, err := strconv.ParseBool(record[7])
	if err != nil {
		return it, err
	}
	it.Flat = flat

	return it, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
