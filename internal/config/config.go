package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Mock store settings
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"memory"` // memory | file | postgres
	DataDir        string `envconfig:"DATA_DIR" default:"./data"`
	StoragePrefix  string `envconfig:"STORAGE_PREFIX" default:"lms_admin"`
	MockLatencyMs  int    `envconfig:"MOCK_LATENCY_MS" default:"200"`

	// Postgres backend settings
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING"`
	DBKVTable          string `envconfig:"DB_KV_TABLE" default:"mock_collections"`
	// Secret Manager resource name holding the connection string; used in
	// non-development environments instead of DB_CONNECTION_STRING.
	DBSecretName string `envconfig:"DB_SECRET_NAME"`

	// Change-event publishing (optional; disabled when project is empty)
	GCPProjectID       string `envconfig:"GCP_PROJECT_ID"`
	PubSubEventsTopic  string `envconfig:"PUBSUB_EVENTS_TOPIC" default:"console_mock_events"`
	PubSubEmulatorHost string `envconfig:"PUBSUB_EMULATOR_HOST"`

	// Lesson material object storage
	S3URL       string `envconfig:"S3_URL"`
	S3Bucket    string `envconfig:"S3_BUCKET" default:"lesson-materials"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MockLatency is the simulated network round-trip delay.
func (c *Config) MockLatency() time.Duration {
	return time.Duration(c.MockLatencyMs) * time.Millisecond
}
