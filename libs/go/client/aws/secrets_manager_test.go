package aws_test

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	awsclient "github.com/cyphera/cyphera-expense/libs/go/client/aws"
	"github.com/cyphera/cyphera-expense/libs/go/mocks"
)

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		arn        string
		fallback   string
		setupMocks func(m *mocks.MockSecretsManagerAPI)
		want       string
		wantErr    bool
	}{
		{
			name: "plain text secret",
			arn:  "arn:aws:secretsmanager:eu-west-3:123:secret:db",
			setupMocks: func(m *mocks.MockSecretsManagerAPI) {
				m.EXPECT().GetSecretValue(ctx, gomock.Any()).
					Return(&secretsmanager.GetSecretValueOutput{SecretString: awssdk.String("postgres://a")}, nil)
			},
			want: "postgres://a",
		},
		{
			name: "single key json secret",
			arn:  "arn:aws:secretsmanager:eu-west-3:123:secret:db",
			setupMocks: func(m *mocks.MockSecretsManagerAPI) {
				m.EXPECT().GetSecretValue(ctx, gomock.Any()).
					Return(&secretsmanager.GetSecretValueOutput{SecretString: awssdk.String(`{"DATABASE_URL":"postgres://b"}`)}, nil)
			},
			want: "postgres://b",
		},
		{
			name:     "fetch failure falls back",
			arn:      "arn:aws:secretsmanager:eu-west-3:123:secret:db",
			fallback: "postgres://fallback",
			setupMocks: func(m *mocks.MockSecretsManagerAPI) {
				m.EXPECT().GetSecretValue(ctx, gomock.Any()).Return(nil, errors.New("access denied"))
			},
			want: "postgres://fallback",
		},
		{
			name:       "no arn uses env",
			fallback:   "postgres://env",
			setupMocks: func(*mocks.MockSecretsManagerAPI) {},
			want:       "postgres://env",
		},
		{
			name:       "nothing configured",
			setupMocks: func(*mocks.MockSecretsManagerAPI) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DB_SECRET_ARN", tt.arn)
			t.Setenv("TEST_DB_URL", tt.fallback)

			api := mocks.NewMockSecretsManagerAPIForTest(t)
			tt.setupMocks(api)
			client := awsclient.NewSecretsManagerClientWithAPI(api)

			got, err := client.GetSecretString(ctx, "TEST_DB_SECRET_ARN", "TEST_DB_URL")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
