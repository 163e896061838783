// Package chart holds the dataset shapes the browser's chart components draw.
package chart

import "fmt"

type Kind string

const (
	KindLine Kind = "line"
	KindPie  Kind = "pie"
	KindBar  Kind = "bar"
)

// Series is one named run of values, aligned with the dataset labels.
type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Dataset is a chart ready to draw. Every series has one value per label.
type Dataset struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title,omitempty"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Line builds a line chart.
func Line(title string, labels []string, series ...Series) (Dataset, error) {
	return build(KindLine, title, labels, series)
}

// Bar builds a bar chart.
func Bar(title string, labels []string, series ...Series) (Dataset, error) {
	return build(KindBar, title, labels, series)
}

// Pie builds a pie chart, which has exactly one series.
func Pie(title string, labels []string, values []float64) (Dataset, error) {
	return build(KindPie, title, labels, []Series{{Label: title, Values: values}})
}

func build(kind Kind, title string, labels []string, series []Series) (Dataset, error) {
	if labels == nil {
		labels = []string{}
	}
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) != len(labels) {
			return Dataset{}, fmt.Errorf("chart: series %q has %d values for %d labels", s.Label, len(s.Values), len(labels))
		}
		values := s.Values
		if values == nil {
			values = []float64{}
		}
		out = append(out, Series{Label: s.Label, Values: values})
	}
	return Dataset{Kind: kind, Title: title, Labels: labels, Series: out}, nil
}
