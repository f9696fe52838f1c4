package document

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"Resto-Manager/pkg/inventory"
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// renderStockChart draws quantity per ingredient; bars at or below the
// low-stock threshold are highlighted red, as on the original desktop chart.
func renderStockChart(ingredients []*entities.Ingredient) ([]byte, error) {
	bars := make([]chart.Value, 0, len(ingredients))
	for _, ingredient := range ingredients {
		bar := chart.Value{
			Label: ingredient.Name,
			Value: ingredient.Quantity,
		}
		if ingredient.Quantity <= inventory.LowStockThreshold {
			bar.Style = chart.Style{
				FillColor:   drawing.ColorRed,
				StrokeColor: drawing.ColorRed,
			}
		}
		bars = append(bars, bar)
	}

	graph := chart.BarChart{
		Title:    "Stock per ingredient",
		Height:   512,
		BarWidth: 50,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderSalesChart(periods []domain.PeriodSales) ([]byte, error) {
	bars := make([]chart.Value, 0, len(periods))
	for _, period := range periods {
		bars = append(bars, chart.Value{
			Label: period.Period,
			Value: period.Revenue,
		})
	}

	graph := chart.BarChart{
		Title:    "Revenue per period",
		Height:   512,
		BarWidth: 50,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
