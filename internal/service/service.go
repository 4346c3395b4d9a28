package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katiamach/xray-contours-api/internal/model"
	"github.com/umahmood/haversine"
)

var (
	ErrLevelNotFound = errors.New("temperature level not found")
	ErrInvalidLevel  = errors.New("invalid temperature level")
)

// Repository provides necessary repo methods.
type Repository interface {
	Load(ctx context.Context, filePath, clusterKey string) (*model.ClusterRecord, error)
}

// ContourService formats cluster contours for the web front end.
type ContourService struct {
	repo Repository
}

// New creates new ContourService.
func New(repo Repository) *ContourService {
	return &ContourService{
		repo: repo,
	}
}

// Temperatures returns cluster levels sorted ascending.
func (cs *ContourService) Temperatures(ctx context.Context, req *model.ClusterRequest) ([]float64, error) {
	record, err := cs.repo.Load(ctx, req.FilePath, req.Cluster)
	if err != nil {
		return nil, fmt.Errorf("failed to load cluster: %w", err)
	}

	temps := make([]float64, len(record.Levels))
	copy(temps, record.Levels)
	sort.Float64s(temps)

	return temps, nil
}

// ContoursAtLevel returns the polygons of the level exactly equal to the requested temperature.
func (cs *ContourService) ContoursAtLevel(ctx context.Context, req *model.LevelRequest) (*model.LevelContours, error) {
	level, err := parseLevel(req.Temperature)
	if err != nil {
		return nil, err
	}

	record, err := cs.repo.Load(ctx, req.FilePath, req.Cluster)
	if err != nil {
		return nil, fmt.Errorf("failed to load cluster: %w", err)
	}

	idx := indexOfLevel(record.Levels, level)
	if idx < 0 {
		return nil, fmt.Errorf("%w: cluster %q has no level %v", ErrLevelNotFound, req.Cluster, level)
	}

	curves := record.Curves[idx]

	return &model.LevelContours{
		Cluster:       req.Cluster,
		Temperature:   record.Levels[idx],
		CountPoints:   model.CountPoints(curves),
		CountPolygons: len(curves),
		Contours:      curves,
	}, nil
}

// AllContours returns every level of the cluster with its polygons and color.
// Temperatures keep storage order so they stay index aligned with contours.
func (cs *ContourService) AllContours(ctx context.Context, req *model.ClusterRequest) (*model.ContourResponse, error) {
	record, err := cs.repo.Load(ctx, req.FilePath, req.Cluster)
	if err != nil {
		return nil, fmt.Errorf("failed to load cluster: %w", err)
	}

	// one scale for all levels so every color shares the same normalization
	colorScale, err := ColorScale(record.Levels)
	if err != nil {
		return nil, fmt.Errorf("failed to build color scale of cluster %q: %w", req.Cluster, err)
	}

	contours := make([]*model.Contour, 0, len(record.Levels))
	for idx, temperature := range record.Levels {
		curves := record.Curves[idx]

		contours = append(contours, &model.Contour{
			Index:         idx,
			Temperature:   temperature,
			CountPolygons: len(curves),
			CountPoints:   model.CountPoints(curves),
			Curves:        curves,
			Color:         colorScale[idx].Hex,
		})
	}

	temps := make([]float64, len(record.Levels))
	copy(temps, record.Levels)

	return &model.ContourResponse{
		Temperatures: temps,
		Contours:     contours,
		ColorScales:  colorScale,
	}, nil
}

// ContourSummary returns the size of every level's contours, including their
// great-circle length in kilometers.
func (cs *ContourService) ContourSummary(ctx context.Context, req *model.ClusterRequest) (*model.ContourSummary, error) {
	record, err := cs.repo.Load(ctx, req.FilePath, req.Cluster)
	if err != nil {
		return nil, fmt.Errorf("failed to load cluster: %w", err)
	}

	levels := make([]*model.LevelSummary, 0, len(record.Levels))
	for idx, temperature := range record.Levels {
		curves := record.Curves[idx]

		var length float64
		for _, polygon := range curves {
			length += polygonLength(polygon)
		}

		levels = append(levels, &model.LevelSummary{
			Index:         idx,
			Temperature:   temperature,
			CountPolygons: len(curves),
			CountPoints:   model.CountPoints(curves),
			LengthKm:      length,
		})
	}

	return &model.ContourSummary{
		Cluster: req.Cluster,
		Levels:  levels,
	}, nil
}

// parseLevel parses the level as sent by clients, which is expected to be
// one of the values returned by Temperatures.
func parseLevel(s string) (float64, error) {
	level, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidLevel, s)
	}
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidLevel, s)
	}

	return level, nil
}

// indexOfLevel finds the first level exactly equal to the given one.
// No tolerance is applied: an approximate match could pick the wrong contour.
func indexOfLevel(levels []float64, level float64) int {
	for i, l := range levels {
		if l == level {
			return i
		}
	}

	return -1
}

// polygonLength sums distances between consecutive points; closure is not assumed.
func polygonLength(polygon model.Polygon) float64 {
	var km float64
	for i := 1; i < len(polygon); i++ {
		from := haversine.Coord{Lat: polygon[i-1].Lat(), Lon: polygon[i-1].Lon()}
		to := haversine.Coord{Lat: polygon[i].Lat(), Lon: polygon[i].Lon()}

		_, d := haversine.Distance(from, to)
		km += d
	}

	return km
}
