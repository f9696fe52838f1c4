package sales

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"
	"sort"
	"time"
)

type (
	SalesService interface {
		GetSalesReport(ctx context.Context, bucket string, from, to time.Time) (domain.SalesReportResponse, error)
		TotalRevenue(ctx context.Context) (float64, error)
	}

	salesService struct {
		salesRepository SalesRepository
	}
)

func NewSalesService(salesRepository SalesRepository) SalesService {
	return &salesService{salesRepository: salesRepository}
}

// GetSalesReport folds the committed order set into totals, per-period
// buckets and per-menu-item frequencies. An empty order set is a zero
// report, never an error.
func (s *salesService) GetSalesReport(ctx context.Context, bucket string, from, to time.Time) (domain.SalesReportResponse, error) {
	orders, err := s.salesRepository.GetCommittedOrders(ctx, from, to)
	if err != nil {
		return domain.SalesReportResponse{}, err
	}

	report := domain.SalesReportResponse{
		TotalOrders:  len(orders),
		TotalRevenue: totalRevenue(orders),
		ByPeriod:     foldByPeriod(orders, bucket),
		ByMenuItem:   foldByMenuItem(orders),
	}
	return report, nil
}

func (s *salesService) TotalRevenue(ctx context.Context) (float64, error) {
	orders, err := s.salesRepository.GetCommittedOrders(ctx, time.Time{}, time.Time{})
	if err != nil {
		return 0, err
	}
	return totalRevenue(orders), nil
}

func totalRevenue(orders []*entities.Order) float64 {
	var total float64
	for _, order := range orders {
		for _, item := range order.Items {
			total += item.PriceAtTime * float64(item.Quantity)
		}
	}
	return total
}

func foldByPeriod(orders []*entities.Order, bucket string) []domain.PeriodSales {
	layout := periodLayout(bucket)

	byPeriod := make(map[string]*domain.PeriodSales)
	for _, order := range orders {
		period := order.OrderDate.Format(layout)
		entry, ok := byPeriod[period]
		if !ok {
			entry = &domain.PeriodSales{Period: period}
			byPeriod[period] = entry
		}
		entry.Orders++
		for _, item := range order.Items {
			entry.Revenue += item.PriceAtTime * float64(item.Quantity)
		}
	}

	periods := make([]domain.PeriodSales, 0, len(byPeriod))
	for _, entry := range byPeriod {
		periods = append(periods, *entry)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period < periods[j].Period
	})
	return periods
}

func foldByMenuItem(orders []*entities.Order) []domain.MenuItemSales {
	byItem := make(map[string]*domain.MenuItemSales)
	for _, order := range orders {
		for _, item := range order.Items {
			key := item.MenuItemID.String()
			entry, ok := byItem[key]
			if !ok {
				entry = &domain.MenuItemSales{MenuItemID: key}
				if item.MenuItem != nil {
					entry.Name = item.MenuItem.Name
				}
				byItem[key] = entry
			}
			entry.Count += item.Quantity
			entry.Revenue += item.PriceAtTime * float64(item.Quantity)
		}
	}

	items := make([]domain.MenuItemSales, 0, len(byItem))
	for _, entry := range byItem {
		items = append(items, *entry)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	return items
}

func periodLayout(bucket string) string {
	switch bucket {
	case domain.BucketYear:
		return "2006"
	case domain.BucketMonth:
		return "2006-01"
	default:
		return "2006-01-02"
	}
}
