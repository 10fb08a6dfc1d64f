package models

type AdminMetrics struct {
	TotalUsers       int     `json:"total_users"`
	TotalGarments    int     `json:"total_garments"`
	TotalBookings    int     `json:"total_bookings"`
	ActiveBookings   int     `json:"active_bookings"`
	PendingApprovals int     `json:"pending_approvals"`
	Revenue          float64 `json:"revenue"`
}
