package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yigit/studentinfo/internal/app/models"
	"github.com/yigit/studentinfo/internal/pkg/docfile"
	"github.com/yigit/studentinfo/internal/pkg/logger"
)

// Collection metrics, updated as the document file is read and written.
var (
	studentRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "studentinfo_student_records",
			Help: "Current number of student records in the collection file",
		},
	)

	saveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "studentinfo_store_save_failures_total",
			Help: "Total number of failed writes to the collection file",
		},
	)
)

// StudentRepository stores student records in a single JSON document file.
// All access goes through the repository's lock, so concurrent requests
// never interleave a read-modify-write cycle.
type StudentRepository struct {
	path string
	mu   sync.RWMutex
}

// NewStudentRepository creates a new student repository backed by the
// document file at path.
func NewStudentRepository(path string) *StudentRepository {
	return &StudentRepository{
		path: path,
	}
}

// EnsureFile creates an empty collection file if none exists yet.
// An already present file is left untouched, whatever it contains.
func (r *StudentRepository) EnsureFile(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok, err := docfile.Exists(r.path)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	data, err := json.MarshalIndent([]models.Student{}, "", "  ")
	if err != nil {
		return err
	}
	if err := docfile.WriteAtomic(r.path, data); err != nil {
		return err
	}

	logger.Info().Str("path", r.path).Msg("Created empty student collection file")
	return nil
}

// Load returns every student record in the collection.
// The store fails open: a missing, empty or unreadable file yields an
// empty collection instead of an error.
func (r *StudentRepository) Load(ctx context.Context) []models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load()
}

// Save replaces the whole collection with records. Write failures are
// logged and counted but never reach the caller; the previous file
// contents survive a failed write.
func (r *StudentRepository) Save(ctx context.Context, records []models.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.save(records)
}

// Append adds one record to the collection. The read-modify-write cycle
// runs under the write lock, so concurrent appends cannot drop records.
func (r *StudentRepository) Append(ctx context.Context, student models.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := append(r.load(), student)
	r.save(records)
}

// load reads and decodes the collection file. Callers must hold the lock.
func (r *StudentRepository) load() []models.Student {
	data, err := docfile.Read(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error().Err(err).Str("path", r.path).Msg("Failed to read student collection file")
		}
		return []models.Student{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Student{}
	}

	var records []models.Student
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Error().Err(err).Str("path", r.path).Msg("Failed to parse student collection file")
		return []models.Student{}
	}
	if records == nil {
		records = []models.Student{}
	}

	studentRecords.Set(float64(len(records)))
	return records
}

// save encodes and writes the collection file. Callers must hold the lock.
func (r *StudentRepository) save(records []models.Student) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		saveFailures.Inc()
		logger.Error().Err(err).Str("path", r.path).Msg("Failed to encode student collection")
		return
	}

	if err := docfile.WriteAtomic(r.path, data); err != nil {
		saveFailures.Inc()
		logger.Error().Err(err).Str("path", r.path).Msg("Failed to write student collection file")
		return
	}

	studentRecords.Set(float64(len(records)))
}
