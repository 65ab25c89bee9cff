package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-expense/libs/go/interfaces"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
)

// SecretsManagerClient resolves secrets from AWS Secrets Manager with an
// environment variable fallback.
type SecretsManagerClient struct {
	svc interfaces.SecretsManagerAPI
}

// NewSecretsManagerClient creates a client from the default AWS configuration chain
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API
func NewSecretsManagerClientWithAPI(svc interfaces.SecretsManagerAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString reads the secret whose ARN is in secretArnEnvVar. When the ARN
// is unset or the fetch fails it falls back to the value of fallbackEnvVar.
// A secret stored as single-key JSON yields the value of that key.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	log := logger.L()
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			return unwrapSingleKeyJSON(*result.SecretString), nil
		}
		log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		log.Debug("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func unwrapSingleKeyJSON(secret string) string {
	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(secret), &secretJSON); err != nil || len(secretJSON) != 1 {
		return secret
	}
	for _, value := range secretJSON {
		return value
	}
	return secret
}
