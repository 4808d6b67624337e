package domain

import "fmt"

type Environment string

const (
	EnvironmentProduction    Environment = "PRODUCTION"
	EnvironmentPreproduction Environment = "PREPRODUCTION"
)

// ParseEnvironment maps the CLI environment names onto the service values.
// Anything other than "prod" is treated as pre-production.
func ParseEnvironment(env string) Environment {
	if env == "prod" {
		return EnvironmentProduction
	}
	return EnvironmentPreproduction
}

type TrustedAdvisorStatus string

const (
	TrustedAdvisorUnset    TrustedAdvisorStatus = ""
	TrustedAdvisorEnabled  TrustedAdvisorStatus = "ENABLED"
	TrustedAdvisorDisabled TrustedAdvisorStatus = "DISABLED"
)

func ParseTrustedAdvisor(value string) (TrustedAdvisorStatus, error) {
	switch value {
	case "":
		return TrustedAdvisorUnset, nil
	case "enable":
		return TrustedAdvisorEnabled, nil
	case "disable":
		return TrustedAdvisorDisabled, nil
	default:
		return TrustedAdvisorUnset, fmt.Errorf("invalid trusted advisor value %q, expected enable or disable", value)
	}
}

type WorkloadSummary struct {
	ID   string
	Name string
}

type Workload struct {
	ID          string
	Name        string
	Description string
	Environment Environment
	AccountIDs  []string
	Regions     []string
	ReviewOwner string
	Lenses      []string
}

// NewWorkload is the creation request sent to the review service.
type NewWorkload struct {
	Name               string
	Description        string
	Environment        Environment
	AccountIDs         []string
	Regions            []string
	ReviewOwner        string
	PillarPriorities   []string
	Lenses             []string
	ClientRequestToken string
	TrustedAdvisor     TrustedAdvisorStatus
}
