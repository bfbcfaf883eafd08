// Package storage persists headless runs under a data directory: one
// subdirectory per run with JSON metadata and the CSV state series.
// Stored runs feed the plot and export commands; they are analysis
// artifacts, not resumable simulation state.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/tsouverin/simulation-numerique-25-26/internal/sim"
)

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
	ID         string    `json:"id"`
	Preset     string    `json:"preset"`
	Timestamp  time.Time `json:"timestamp"`
	Dt         float64   `json:"dt"`
	Frames     int       `json:"frames"`
	Integrator string    `json:"integrator"`
	Planets    []string  `json:"planets"`
	MaxDrift   float64   `json:"max_drift"`
	Skipped    int       `json:"skipped_frames"`
}

// Save writes a run's metadata and state series and returns the run ID.
func (s *Store) Save(preset string, dt float64, integrator string, res *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Preset:     preset,
		Timestamp:  time.Now(),
		Dt:         dt,
		Frames:     len(res.Times) - 1,
		Integrator: integrator,
		Planets:    res.Names,
		MaxDrift:   res.MaxDrift,
		Skipped:    len(res.Errors),
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

	stateFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer stateFile.Close()

	w := csv.NewWriter(stateFile)
	header := []string{"t"}
	for _, name := range res.Names {
		header = append(header, name+"_x", name+"_y", name+"_vx", name+"_vy")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for i, t := range res.Times {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(t, 'e', 9, 64))
		for _, v := range res.States[i] {
			row = append(row, strconv.FormatFloat(v, 'e', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return runID, w.Error()
}

// List returns the stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMeta(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) LoadMeta(runID string) (*RunMetadata, error) {
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

// LoadStates reads back a run's time and state series.
func (s *Store) LoadStates(runID string) (times []float64, states [][]float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("storage: run %s: empty state series", runID)
	}

	for _, row := range rows[1:] {
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, err
		}
		state := make([]float64, len(row)-1)
		for i, cell := range row[1:] {
			if state[i], err = strconv.ParseFloat(cell, 64); err != nil {
				return nil, nil, err
			}
		}
		times = append(times, t)
		states = append(states, state)
	}
	return times, states, nil
}
