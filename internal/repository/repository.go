// Package repository provides methods to read cluster records from store files.
package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katiamach/xray-contours-api/internal/metrics"
	"github.com/katiamach/xray-contours-api/internal/model"
)

// Store errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrCorruptStore      = errors.New("corrupt store")
	ErrUnsupportedFormat = errors.New("unsupported store format")
)

// Load outcomes.
const (
	outcomeSuccess     = "success"
	outcomeNotFound    = "not_found"
	outcomeCorrupt     = "corrupt"
	outcomeUnsupported = "unsupported"
	outcomeCanceled    = "canceled"
	outcomeError       = "error"
)

// Repository reads clusters from store files. Files are read on every call.
type Repository struct {
	storeDir string
	metrics  *metrics.Metrics
}

// New creates new repository. Relative store paths are resolved against storeDir
// and may not escape it; an empty storeDir leaves paths untouched.
func New(storeDir string, m *metrics.Metrics) *Repository {
	return &Repository{
		storeDir: storeDir,
		metrics:  m,
	}
}

// Load reads the cluster stored under clusterKey in the given store file.
func (r *Repository) Load(ctx context.Context, filePath, clusterKey string) (record *model.ClusterRecord, err error) {
	format := formatOf(filePath)
	defer func() {
		r.observe(format, err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decode, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filePath))
	}

	path, err := r.resolve(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read store %s: %w", ErrNotFound, filePath, err)
	}

	stored, err := decode(data, clusterKey)
	if err != nil {
		return nil, err
	}

	return stored.toRecord(clusterKey)
}

func (r *Repository) resolve(filePath string) (string, error) {
	if r.storeDir == "" {
		return filePath, nil
	}

	full := filepath.Join(r.storeDir, filePath)

	rel, err := filepath.Rel(r.storeDir, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: store %s is outside the store directory", ErrNotFound, filePath)
	}

	return full, nil
}

func (r *Repository) observe(format string, err error) {
	if r.metrics == nil {
		return
	}

	outcome := outcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = outcomeNotFound
	case errors.Is(err, ErrCorruptStore):
		outcome = outcomeCorrupt
	case errors.Is(err, ErrUnsupportedFormat):
		outcome = outcomeUnsupported
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = outcomeCanceled
	default:
		outcome = outcomeError
	}

	r.metrics.StoreLoads.WithLabelValues(format, outcome).Inc()
}

// storedCluster is the on-disk layout of a single cluster.
type storedCluster struct {
	Levels []float64       `json:"levels" bson:"levels" yaml:"levels"`
	Curves [][][][]float64 `json:"curves" bson:"curves" yaml:"curves"`
}

func (sc *storedCluster) toRecord(name string) (*model.ClusterRecord, error) {
	if len(sc.Levels) != len(sc.Curves) {
		return nil, fmt.Errorf("%w: cluster %q has %d levels and %d curves", ErrCorruptStore, name, len(sc.Levels), len(sc.Curves))
	}

	// levels go through log10 when colored, so they must be positive
	for i, level := range sc.Levels {
		if !isFinite(level) || level <= 0 {
			return nil, fmt.Errorf("%w: cluster %q level %d is %v, should be a positive number", ErrCorruptStore, name, i, level)
		}
	}

	curves := make([][]model.Polygon, 0, len(sc.Curves))
	for i, level := range sc.Curves {
		polygons := make([]model.Polygon, 0, len(level))

		for j, rawPolygon := range level {
			polygon := make(model.Polygon, 0, len(rawPolygon))

			for k, rawPoint := range rawPolygon {
				if len(rawPoint) != 2 {
					return nil, fmt.Errorf("%w: cluster %q level %d polygon %d point %d has %d coordinates",
						ErrCorruptStore, name, i, j, k, len(rawPoint))
				}
				if !isFinite(rawPoint[0]) || !isFinite(rawPoint[1]) {
					return nil, fmt.Errorf("%w: cluster %q level %d polygon %d point %d is not finite",
						ErrCorruptStore, name, i, j, k)
				}
				polygon = append(polygon, model.Point{rawPoint[0], rawPoint[1]})
			}

			polygons = append(polygons, polygon)
		}

		curves = append(curves, polygons)
	}

	levels := make([]float64, len(sc.Levels))
	copy(levels, sc.Levels)

	return &model.ClusterRecord{
		Name:   name,
		Levels: levels,
		Curves: curves,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
