package model

// ClusterRequest contains parameters identifying a cluster inside a store file.
type ClusterRequest struct {
	FilePath string `json:"filepath"`
	Cluster  string `json:"cluster"`
}

// LevelRequest contains parameters identifying a single temperature level of a cluster.
// Temperature is kept as received, the service parses it.
type LevelRequest struct {
	FilePath    string `json:"filepath"`
	Cluster     string `json:"cluster"`
	Temperature string `json:"temp"`
}

// Point is a (longitude, latitude) pair in degrees.
type Point [2]float64

// Lon returns point longitude.
func (p Point) Lon() float64 { return p[0] }

// Lat returns point latitude.
func (p Point) Lat() float64 { return p[1] }

// Polygon is an ordered sequence of points, closed or open as produced upstream.
type Polygon []Point

// ClusterRecord is a cluster stored in a store file.
// Curves[i] holds the polygons extracted at Levels[i].
type ClusterRecord struct {
	Name   string
	Levels []float64
	Curves [][]Polygon
}

// CountPoints sums the vertex count of all the given polygons.
func CountPoints(polygons []Polygon) int {
	count := 0
	for _, p := range polygons {
		count += len(p)
	}

	return count
}

// TemperaturesResponse is the list of cluster temperatures sorted ascending.
type TemperaturesResponse struct {
	Cluster      string    `json:"cluster"`
	Temperatures []float64 `json:"temperatures"`
	Count        int       `json:"count"`
}

// LevelContours contains the polygons of a single cluster level.
type LevelContours struct {
	Cluster       string    `json:"cluster"`
	Temperature   float64   `json:"temperature"`
	CountPoints   int       `json:"count_points"`
	CountPolygons int       `json:"count_polygons"`
	Contours      []Polygon `json:"contours"`
}

// Contour describes the polygons of one level together with its color.
type Contour struct {
	Index         int       `json:"index"`
	Temperature   float64   `json:"temperature"`
	CountPolygons int       `json:"count_polygons"`
	CountPoints   int       `json:"count_points"`
	Curves        []Polygon `json:"curves"`
	Color         string    `json:"color"`
}

// ContourResponse contains every level of a cluster, index aligned with Temperatures.
type ContourResponse struct {
	Temperatures []float64         `json:"temperatures"`
	Contours     []*Contour        `json:"contours"`
	ColorScales  []ColorScaleEntry `json:"colorscales"`
}

// LevelSummary contains the size of one level's contours.
type LevelSummary struct {
	Index         int     `json:"index"`
	Temperature   float64 `json:"temperature"`
	CountPolygons int     `json:"count_polygons"`
	CountPoints   int     `json:"count_points"`
	LengthKm      float64 `json:"length_km"`
}

// ContourSummary contains level summaries of a cluster in storage order.
type ContourSummary struct {
	Cluster string          `json:"cluster"`
	Levels  []*LevelSummary `json:"levels"`
}
