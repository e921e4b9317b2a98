// Package dataset loads the four static compliance datasets from disk.
//
// Every dataset is read and parsed exactly once per process and cached for
// the process lifetime. There is no invalidation: picking up a refreshed
// snapshot requires a restart. Loaded structures must be treated as
// immutable; with that discipline the store is safe for concurrent readers.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-yaml"

	"pcimon/internal/domain/models"
	"pcimon/pkg/logger"
)

// Dataset names used in errors and logs
const (
	DatasetRequirements  = "requirements"
	DatasetControlStatus = "control_status"
	DatasetFindings      = "findings"
	DatasetTrend         = "trend"
)

// LoadError reports a missing or malformed source file. It is fatal to
// startup; no partial or default data is ever substituted.
type LoadError struct {
	Dataset string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s dataset from %s: %v", e.Dataset, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Config holds the source file paths for the four datasets
type Config struct {
	RequirementsPath  string
	ControlStatusPath string
	FindingsPath      string
	TrendPath         string
}

// Store is the process-wide dataset cache. Each accessor memoizes its result
// (value or error) on first call; repeated calls return the identical cached
// value without re-reading the file.
type Store struct {
	cfg    Config
	logger *logger.Logger

	reqOnce sync.Once
	reqs    []models.Requirement
	reqErr  error

	statusOnce sync.Once
	status     *models.StatusSnapshot
	statusErr  error

	findingsOnce sync.Once
	findings     []models.Finding
	findingsErr  error

	trendOnce sync.Once
	trend     *models.TrendData
	trendErr  error
}

// NewStore creates a new dataset store
func NewStore(cfg Config, log *logger.Logger) *Store {
	return &Store{
		cfg:    cfg,
		logger: log.WithComponent("dataset"),
	}
}

// Requirements returns the requirement catalog
func (s *Store) Requirements() ([]models.Requirement, error) {
	s.reqOnce.Do(func() {
		var catalog models.RequirementCatalog
		if err := s.readYAML(DatasetRequirements, s.cfg.RequirementsPath, &catalog); err != nil {
			s.reqErr = err
			return
		}
		s.reqs = catalog.Requirements
		s.logger.Info().
			Str("dataset", DatasetRequirements).
			Int("count", len(s.reqs)).
			Msg("dataset loaded")
	})
	return s.reqs, s.reqErr
}

// ControlStatus returns the control status snapshot
func (s *Store) ControlStatus() (*models.StatusSnapshot, error) {
	s.statusOnce.Do(func() {
		var snapshot models.StatusSnapshot
		if err := s.readJSON(DatasetControlStatus, s.cfg.ControlStatusPath, &snapshot); err != nil {
			s.statusErr = err
			return
		}
		s.status = &snapshot
		s.logger.Info().
			Str("dataset", DatasetControlStatus).
			Str("snapshot_date", snapshot.SnapshotDate).
			Int("controls", len(snapshot.Controls)).
			Msg("dataset loaded")
	})
	return s.status, s.statusErr
}

// Findings returns the findings collection
func (s *Store) Findings() ([]models.Finding, error) {
	s.findingsOnce.Do(func() {
		var collection models.FindingCollection
		if err := s.readJSON(DatasetFindings, s.cfg.FindingsPath, &collection); err != nil {
			s.findingsErr = err
			return
		}
		s.findings = collection.Findings
		s.logger.Info().
			Str("dataset", DatasetFindings).
			Int("count", len(s.findings)).
			Msg("dataset loaded")
	})
	return s.findings, s.findingsErr
}

// Trend returns the trend series and its events
func (s *Store) Trend() (*models.TrendData, error) {
	s.trendOnce.Do(func() {
		var trend models.TrendData
		if err := s.readJSON(DatasetTrend, s.cfg.TrendPath, &trend); err != nil {
			s.trendErr = err
			return
		}
		s.trend = &trend
		s.logger.Info().
			Str("dataset", DatasetTrend).
			Int("points", len(trend.TrendData)).
			Int("events", len(trend.Events)).
			Msg("dataset loaded")
	})
	return s.trend, s.trendErr
}

// Preload eagerly loads all four datasets and returns the first failure.
// cmd/api calls this at startup so a bad snapshot surfaces to the operator
// before the server starts accepting traffic.
func (s *Store) Preload() error {
	if _, err := s.Requirements(); err != nil {
		return err
	}
	if _, err := s.ControlStatus(); err != nil {
		return err
	}
	if _, err := s.Findings(); err != nil {
		return err
	}
	if _, err := s.Trend(); err != nil {
		return err
	}
	return nil
}

func (s *Store) readJSON(dataset, path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Dataset: dataset, Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &LoadError{Dataset: dataset, Path: path, Err: err}
	}
	return nil
}

func (s *Store) readYAML(dataset, path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Dataset: dataset, Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return &LoadError{Dataset: dataset, Path: path, Err: err}
	}
	return nil
}
