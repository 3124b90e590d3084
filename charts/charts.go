package charts

import "math"

// Palette used across all panels. First two entries double as the gender
// colors (female, male) to keep the comparison chart readable.
var Palette = []string{
	"#1E88E5", "#43A047", "#E53935", "#FB8C00", "#8E24AA",
	"#00ACC1", "#F06292", "#7CB342", "#5E35B1", "#6D4C41",
}

const (
	GenderFemaleColor = "#ff69b4"
	GenderMaleColor   = "#4169e1"
)

// Config defines how the page renders a chart. The shape matches what the
// embedded frontend feeds straight into plotly.
type Config struct {
	ChartType  string   `json:"chartType"`
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Series     []Series `json:"series"`
	ShowLegend bool     `json:"showLegend"`
}

// Series is one named trace in a chart.
type Series struct {
	Name  string  `json:"name"`
	Color string  `json:"color,omitempty"`
	Data  []Point `json:"data"`
}

// Point is a single labelled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Line builds a single-series line chart.
func Line(title, xAxis, yAxis, seriesName string, points []Point) *Config {
	return &Config{
		ChartType: "line",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     yAxis,
		Series: []Series{{
			Name:  seriesName,
			Color: Palette[0],
			Data:  roundPoints(points),
		}},
	}
}

// MultiLine builds a line chart with one trace per series, legend on.
func MultiLine(title, xAxis, yAxis string, series []Series) *Config {
	return &Config{
		ChartType:  "line",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     assignColors(series),
		ShowLegend: true,
	}
}

// Bar builds a single-series bar chart.
func Bar(title, xAxis, yAxis, seriesName string, points []Point) *Config {
	return &Config{
		ChartType: "bar",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     yAxis,
		Series: []Series{{
			Name:  seriesName,
			Color: Palette[1],
			Data:  roundPoints(points),
		}},
	}
}

// GroupedBar builds a bar chart with one group of bars per series.
func GroupedBar(title, xAxis, yAxis string, series []Series) *Config {
	return &Config{
		ChartType:  "groupedBar",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     assignColors(series),
		ShowLegend: true,
	}
}

// Empty builds a chart carrying only a message, used when a query returns no
// rows. The frontend shows the message as an annotation.
func Empty(title, message string) *Config {
	return &Config{
		ChartType: "empty",
		Title:     title,
		Series:    []Series{},
		XAxis:     message,
	}
}

func assignColors(series []Series) []Series {
	for i := range series {
		if series[i].Color == "" {
			series[i].Color = Palette[i%len(Palette)]
		}
		series[i].Data = roundPoints(series[i].Data)
	}
	return series
}

func roundPoints(points []Point) []Point {
	for i := range points {
		points[i].Value = RoundTo2(points[i].Value)
	}
	if points == nil {
		return []Point{}
	}
	return points
}

func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
