package service

import "strconv"

// CurrentMetrics is the caller-supplied financial snapshot used by both
// proxies.
type CurrentMetrics struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	BurnRate float64 `json:"burn_rate"`
	Runway   int     `json:"runway"`
}

// StartupData is the profile slice embedded in prediction prompts.
// TeamExperience is in years.
type StartupData struct {
	Sector         string `json:"sector"`
	Stage          string `json:"stage"`
	TeamExperience int    `json:"team_experience"`
}

// PredictionData is the optional forecast slice embedded in playbook
// prompts.
type PredictionData struct {
	FailureProbability float64 `json:"failure_probability"`
	GrowthRate         float64 `json:"growth_rate"`
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
