package kmedians

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Report is a point-in-time summary of a cluster.
type Report struct {
	ID        string    `json:"id"`
	NumPoints int       `json:"num_points"`
	Centroid  []float64 `json:"centroid"`
	// Points holds the member names in lexicographic order.
	Points []string `json:"points"`
}

// Report returns a summary of the cluster's current state.
func (c *Cluster[ID]) Report() Report {
	names := make([]string, len(c.points))
	for i, p := range c.points {
		names[i] = p.Name()
	}
	slices.Sort(names)

	return Report{
		ID:        fmt.Sprint(c.id),
		NumPoints: len(c.points),
		Centroid:  c.Centroid(),
		Points:    names,
	}
}

// String returns the human-readable report.
func (c *Cluster[ID]) String() string {
	var sb strings.Builder
	_, _ = c.Report().WriteTo(&sb)
	return sb.String()
}

const reportSeparator = "############################################"

// WriteTo writes the report in a human-readable form.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%s\nCluster: %s\nNumber of points: %d\nCentroid: %v\nPoints: %s\n",
		reportSeparator, r.ID, r.NumPoints, r.Centroid, strings.Join(r.Points, " "))
	return int64(n), err
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", r.ID),
		slog.Int("num_points", r.NumPoints),
		slog.Any("centroid", r.Centroid),
		slog.Any("points", r.Points),
	)
}

// WriteJSON writes the report as a single line of JSON.
func (r Report) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}
