package models

// Deployment describes the latest successful production deployment of the site.
type Deployment struct {
	DeployedAt    string  `json:"deployedAt"`
	CommitHash    *string `json:"commitHash"`
	CommitMessage *string `json:"commitMessage"`
	Status        string  `json:"status"`
	URL           *string `json:"url"`
}
