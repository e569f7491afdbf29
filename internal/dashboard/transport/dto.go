package transport

type DashboardStatsRequest struct {
	AgentID *int64 `form:"agentId" validate:"omitempty,min=1"`
}

type MonthlySales struct {
	Month   string  `json:"month"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type DashboardStats struct {
	TotalLeads         int            `json:"totalLeads"`
	ActiveDeals        int            `json:"activeDeals"`
	CompletedSales     int            `json:"completedSales"`
	Revenue            float64        `json:"revenue"`
	HighIntentBrowsers int            `json:"highIntentBrowsers"`
	PendingFollowUps   int            `json:"pendingFollowUps"`
	LeadsByStage       map[string]int `json:"leadsByStage"`
	LeadsBySource      map[string]int `json:"leadsBySource"`
	SalesByMonth       []MonthlySales `json:"salesByMonth"`
}
