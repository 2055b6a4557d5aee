package constant

import (
	"time"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelExternalScopeName   = "external"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = time.RFC3339
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
