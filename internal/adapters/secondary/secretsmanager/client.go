package secretsmanager

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sm "github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"ccms-monitor/internal/core/domain"
	"ccms-monitor/internal/core/ports/output"
)

// SecretsAPI is the subset of the Secrets Manager client used by this
// adapter.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *sm.GetSecretValueInput, optFns ...func(*sm.Options)) (*sm.GetSecretValueOutput, error)
}

type credentialStore struct {
	api        SecretsAPI
	secretName string
	trace      string
}

// NewCredentialStore creates a credential store backed by AWS Secrets
// Manager.
func NewCredentialStore(awsCfg aws.Config, secretName, trace string) ports.CredentialStore {
	return &credentialStore{
		api:        sm.NewFromConfig(awsCfg),
		secretName: secretName,
		trace:      trace,
	}
}

// NewCredentialStoreWithAPI wires an explicit API client.
func NewCredentialStoreWithAPI(api SecretsAPI, secretName, trace string) ports.CredentialStore {
	return &credentialStore{api: api, secretName: secretName, trace: trace}
}

func (s *credentialStore) Fetch(ctx context.Context) (*domain.Credential, error) {
	out, err := s.api.GetSecretValue(ctx, &sm.GetSecretValueInput{
		SecretId: aws.String(s.secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("get secret value %q: %w", s.secretName, err)
	}
	if out.SecretString == nil {
		return nil, domain.ErrSecretMalformed
	}

	var cred domain.Credential
	if err := json.Unmarshal([]byte(*out.SecretString), &cred); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSecretMalformed, err)
	}
	if cred.Trace == "" {
		cred.Trace = s.trace
	}
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	return &cred, nil
}
