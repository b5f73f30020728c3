package admin

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type StatsResponse struct {
	TotalArtisans       int64 `json:"total_artisans"`
	VerifiedArtisans    int64 `json:"verified_artisans"`
	PendingApplications int64 `json:"pending_applications"`
	SearchesToday       int64 `json:"searches_today"`
	ActiveAds           int64 `json:"active_ads"`
}
