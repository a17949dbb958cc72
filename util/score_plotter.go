package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"partyscout/models"
)

// RenderMatchScoreChart generates an HTML bar chart of venue match scores
// for a party search response and writes it to w.
func RenderMatchScoreChart(response *models.PartySearchResponse, w io.Writer) error {
	names := make([]string, 0, len(response.Venues))
	scores := make([]opts.BarData, 0, len(response.Venues))
	for _, venue := range response.Venues {
		names = append(names, venue.Name)
		scores = append(scores, opts.BarData{Value: venue.MatchScore})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venue Match Scores",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Venue Match Scores",
			Subtitle: fmt.Sprintf("Zip code %s, %d guests", response.SearchCriteria.ZipCode, response.SearchCriteria.GuestCount),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Max: 100,
		}),
	)

	bar.SetXAxis(names)
	bar.AddSeries("Match score", scores,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render match score chart: %w", err)
	}
	return nil
}
