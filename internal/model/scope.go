package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the authenticated caller of a use case.
type Scope struct {
	UserID    int64
	Username  string
	SessionID string
}
