package domain

var (
	MessageSuccessGetSales = "sales report retrieved successfully"
	MessageFailedGetSales  = "failed to retrieve sales report"
)

const (
	BucketDay   = "day"
	BucketMonth = "month"
	BucketYear  = "year"
)

type (
	PeriodSales struct {
		Period  string  `json:"period"`
		Orders  int     `json:"orders"`
		Revenue float64 `json:"revenue"`
	}

	MenuItemSales struct {
		MenuItemID string  `json:"menu_item_id"`
		Name       string  `json:"name"`
		Count      int     `json:"count"`
		Revenue    float64 `json:"revenue"`
	}

	SalesReportResponse struct {
		TotalOrders  int             `json:"total_orders"`
		TotalRevenue float64         `json:"total_revenue"`
		ByPeriod     []PeriodSales   `json:"by_period"`
		ByMenuItem   []MenuItemSales `json:"by_menu_item"`
	}
)
