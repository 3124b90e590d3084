package charts

import "testing"

func TestLineRoundsValues(t *testing.T) {
	chart := Line("Title", "X", "Y", "Series", []Point{
		{Label: "2021", Value: 136.66666},
		{Label: "2022", Value: 133.333},
	})
	if chart.ChartType != "line" {
		t.Fatalf("chart type = %q, want line", chart.ChartType)
	}
	if chart.Series[0].Data[0].Value != 136.67 {
		t.Fatalf("value not rounded: %v", chart.Series[0].Data[0].Value)
	}
	if chart.Series[0].Data[1].Value != 133.33 {
		t.Fatalf("value not rounded: %v", chart.Series[0].Data[1].Value)
	}
	if chart.Series[0].Color == "" {
		t.Fatal("single series should carry a palette color")
	}
}

func TestMultiLineAssignsColors(t *testing.T) {
	chart := MultiLine("Title", "X", "Y", []Series{
		{Name: "A", Data: []Point{{Label: "p", Value: 1}}},
		{Name: "B", Color: "#123456", Data: []Point{{Label: "p", Value: 2}}},
		{Name: "C", Data: []Point{{Label: "p", Value: 3}}},
	})
	if !chart.ShowLegend {
		t.Fatal("multi-series chart should show legend")
	}
	if chart.Series[0].Color != Palette[0] {
		t.Fatalf("first series color = %q, want palette[0]", chart.Series[0].Color)
	}
	if chart.Series[1].Color != "#123456" {
		t.Fatalf("explicit color overwritten: %q", chart.Series[1].Color)
	}
	if chart.Series[2].Color != Palette[2] {
		t.Fatalf("third series color = %q, want palette[2]", chart.Series[2].Color)
	}
}

func TestGroupedBar(t *testing.T) {
	chart := GroupedBar("Title", "X", "Y", []Series{
		{Name: "F", Data: []Point{{Label: "Estrato 1", Value: 115.556}}},
		{Name: "M", Data: []Point{{Label: "Estrato 1", Value: 110}}},
	})
	if chart.ChartType != "groupedBar" {
		t.Fatalf("chart type = %q, want groupedBar", chart.ChartType)
	}
	if chart.Series[0].Data[0].Value != 115.56 {
		t.Fatalf("value not rounded: %v", chart.Series[0].Data[0].Value)
	}
}

func TestEmptyChart(t *testing.T) {
	chart := Empty("Title", "No data available")
	if chart.ChartType != "empty" {
		t.Fatalf("chart type = %q, want empty", chart.ChartType)
	}
	if chart.Series == nil || len(chart.Series) != 0 {
		t.Fatalf("empty chart must carry an empty series slice, got %#v", chart.Series)
	}
}

func TestRoundTo2(t *testing.T) {
	cases := map[float64]float64{
		1.006:   1.01,
		-2.554:  -2.55,
		100:     100,
		0.00499: 0,
	}
	for in, want := range cases {
		if got := RoundTo2(in); got != want {
			t.Errorf("RoundTo2(%v) = %v, want %v", in, got, want)
		}
	}
}
