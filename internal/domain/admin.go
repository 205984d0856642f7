package domain

// AdminSummary holds the entity counts shown on the admin dashboard
type AdminSummary struct {
	Companies int64 `json:"companies"`
	Users     int64 `json:"users"`
	Posts     int64 `json:"posts"`
	Messages  int64 `json:"messages"`
}
