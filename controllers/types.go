package controllers

import "github.com/Manuelc122/saber-pro-dashboard/charts"

// ChartResponse is the payload shape every chart panel endpoint returns: a
// render-ready chart config plus a one-sentence interpretation shown under
// the panel.
type ChartResponse struct {
	Chart          *charts.Config `json:"chart"`
	Interpretation string         `json:"interpretation"`
}
