package config

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// ResolveDBConnectionString fills in DBConnectionString from Secret Manager
// when DBSecretName is set. Deployed mock environments keep the connection
// string out of the environment; local development sets it directly and
// this is a no-op.
func (c *Config) ResolveDBConnectionString(ctx context.Context) error {
	if c.DBSecretName == "" {
		return nil
	}
	if c.GCPProjectID == "" {
		return fmt.Errorf("GCP_PROJECT_ID must be set when DB_SECRET_NAME is used")
	}

	var opts []option.ClientOption
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	defer client.Close()

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", c.GCPProjectID, c.DBSecretName)
	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return fmt.Errorf("failed to access secret %s: %w", name, err)
	}

	c.DBConnectionString = string(result.Payload.Data)
	return nil
}
