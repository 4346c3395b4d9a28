package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/katiamach/xray-contours-api/internal/logger"
	"github.com/katiamach/xray-contours-api/internal/model"
	"github.com/katiamach/xray-contours-api/internal/repository"
	"github.com/katiamach/xray-contours-api/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go ContourService

// ErrMissingParameter is returned when a required query parameter is absent.
var ErrMissingParameter = errors.New("missing parameter")

// ContourService provides contour service methods.
type ContourService interface {
	Temperatures(ctx context.Context, req *model.ClusterRequest) ([]float64, error)
	ContoursAtLevel(ctx context.Context, req *model.LevelRequest) (*model.LevelContours, error)
	AllContours(ctx context.Context, req *model.ClusterRequest) (*model.ContourResponse, error)
	ContourSummary(ctx context.Context, req *model.ClusterRequest) (*model.ContourSummary, error)
}

// ContourServer is a server for cluster contours requests.
type ContourServer struct {
	service ContourService
}

// NewContourServer creates new ContourServer.
func NewContourServer(service ContourService) *ContourServer {
	return &ContourServer{service}
}

// HelloHandler answers on the root path.
func (s *ContourServer) HelloHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello, World!"))
}

// HealthHandler reports the service is alive.
func (s *ContourServer) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// TemperaturesHandler handles Temperatures request.
func (s *ContourServer) TemperaturesHandler(w http.ResponseWriter, r *http.Request) {
	req, err := validateClusterParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	temps, err := s.service.Temperatures(r.Context(), req)
	if err != nil {
		s.fail(w, "failed to get temperatures", err)
		return
	}

	respond(w, http.StatusOK, &model.TemperaturesResponse{
		Cluster:      req.Cluster,
		Temperatures: temps,
		Count:        len(temps),
	})
}

// ContoursByTempHandler handles ContoursAtLevel request.
func (s *ContourServer) ContoursByTempHandler(w http.ResponseWriter, r *http.Request) {
	req, err := validateLevelParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	contours, err := s.service.ContoursAtLevel(r.Context(), req)
	if err != nil {
		s.fail(w, "failed to get contours by temperature", err)
		return
	}

	respond(w, http.StatusOK, contours)
}

// ContoursHandler handles AllContours request.
func (s *ContourServer) ContoursHandler(w http.ResponseWriter, r *http.Request) {
	req, err := validateClusterParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	contours, err := s.service.AllContours(r.Context(), req)
	if err != nil {
		s.fail(w, "failed to get contours", err)
		return
	}

	respond(w, http.StatusOK, contours)
}

// ContoursSummaryHandler handles ContourSummary request.
func (s *ContourServer) ContoursSummaryHandler(w http.ResponseWriter, r *http.Request) {
	req, err := validateClusterParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	summary, err := s.service.ContourSummary(r.Context(), req)
	if err != nil {
		s.fail(w, "failed to get contours summary", err)
		return
	}

	respond(w, http.StatusOK, summary)
}

func (s *ContourServer) fail(w http.ResponseWriter, msg string, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logger.Error(fmt.Errorf("%s: %v", msg, err))
	}

	respondErr(w, code, err)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrMissingParameter),
		errors.Is(err, service.ErrInvalidLevel),
		errors.Is(err, repository.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrLevelNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrCorruptStore):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func requireParam(params url.Values, name string) (string, error) {
	v := params.Get(name)
	if v == "" {
		return "", fmt.Errorf("%w: %s parameter not provided in query", ErrMissingParameter, name)
	}

	return v, nil
}

func validateClusterParams(params url.Values) (*model.ClusterRequest, error) {
	filePath, err := requireParam(params, "filepath")
	if err != nil {
		return nil, err
	}

	cluster, err := requireParam(params, "cluster")
	if err != nil {
		return nil, err
	}

	return &model.ClusterRequest{FilePath: filePath, Cluster: cluster}, nil
}

func validateLevelParams(params url.Values) (*model.LevelRequest, error) {
	req, err := validateClusterParams(params)
	if err != nil {
		return nil, err
	}

	temp, err := requireParam(params, "temp")
	if err != nil {
		return nil, err
	}

	return &model.LevelRequest{FilePath: req.FilePath, Cluster: req.Cluster, Temperature: temp}, nil
}
