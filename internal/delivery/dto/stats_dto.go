package dto

// AdminStatsResponse is the platform-wide dashboard counters.
type AdminStatsResponse struct {
	TotalClients        int64 `json:"totalClients"`
	TotalLivreurs       int64 `json:"totalLivreurs"`
	TotalPharmacies     int64 `json:"totalPharmacies"`
	TotalAdminPharmacie int64 `json:"totalAdminPharmacie"`
	TotalOrders         int64 `json:"totalOrders"`
}

// AdminPharmacyStatsResponse is the pharmacy back-office counters.
type AdminPharmacyStatsResponse struct {
	TotalPharmacies  int64 `json:"totalPharmacies"`
	TotalPharmaciens int64 `json:"totalPharmaciens"`
	TotalCategories  int64 `json:"totalCategories"`
	TotalProduits    int64 `json:"totalProduits"`
}
