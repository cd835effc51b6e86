// Package constants contains string values shared between config and infrastructure.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
	PubSubProviderNoop   = "noop"
)

// Event type attribute and header values
const (
	EventTypeStudentNotification = "student_notification"
)
