package dto

type HealthStatus struct {
	Status string `json:"status"`
}

type HealthServices struct {
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}

type HealthReport struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}
