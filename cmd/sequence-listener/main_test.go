package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/mocks"
	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

func storedSequence(t *testing.T, seq business.Sequential) db.AppConfig {
	t.Helper()
	value, err := json.Marshal(seq)
	require.NoError(t, err)
	return db.AppConfig{Key: constants.ExpenseInvoiceSequenceConfigKey, Value: value}
}

func TestHandleSequenceEvent(t *testing.T) {
	stored := business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYYYY, Next: 4}

	tests := []struct {
		name         string
		records      []events.SQSMessage
		setupMocks   func(q *mocks.MockQuerier)
		wantFailures []string
	}{
		{
			name: "stores pushed counter",
			records: []events.SQSMessage{
				{MessageId: "m-1", Body: `{"event":"expense-invoice-sequence-updated","value":12}`},
			},
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().GetSequentialConfig(gomock.Any(), constants.ExpenseInvoiceSequenceConfigKey).
					Return(storedSequence(t, stored), nil)
				q.EXPECT().UpdateSequentialConfig(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.UpdateSequentialConfigParams) (db.AppConfig, error) {
						var seq business.Sequential
						require.NoError(t, json.Unmarshal(arg.Value, &seq))
						assert.Equal(t, 12, seq.Next)
						assert.Equal(t, "DEP", seq.Prefix)
						return db.AppConfig{Key: arg.Key, Value: arg.Value}, nil
					})
			},
			wantFailures: []string{},
		},
		{
			name: "drops malformed messages without retry",
			records: []events.SQSMessage{
				{MessageId: "m-1", Body: `not json`},
				{MessageId: "m-2", Body: `{"event":"other-event","value":3}`},
				{MessageId: "m-3", Body: `{"event":"expense-invoice-sequence-updated"}`},
			},
			setupMocks:   func(q *mocks.MockQuerier) {},
			wantFailures: []string{},
		},
		{
			name: "reports store failures for redelivery",
			records: []events.SQSMessage{
				{MessageId: "m-1", Body: `{"value":5}`},
				{MessageId: "m-2", Body: `{"value":6}`},
			},
			setupMocks: func(q *mocks.MockQuerier) {
				gomock.InOrder(
					q.EXPECT().GetSequentialConfig(gomock.Any(), gomock.Any()).
						Return(db.AppConfig{}, errors.New("connection refused")),
					q.EXPECT().GetSequentialConfig(gomock.Any(), gomock.Any()).
						Return(storedSequence(t, stored), nil),
				)
				q.EXPECT().UpdateSequentialConfig(gomock.Any(), gomock.Any()).
					Return(db.AppConfig{}, nil)
			},
			wantFailures: []string{"m-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			querier := mocks.NewMockQuerierForTest(t)
			tt.setupMocks(querier)

			app := newApplication(services.NewSequentialService(querier), logger.WithComponent(logger.ComponentSequence))
			response, err := app.handleSequenceEvent(context.Background(), events.SQSEvent{Records: tt.records})
			require.NoError(t, err)

			failures := make([]string, 0, len(response.BatchItemFailures))
			for _, failure := range response.BatchItemFailures {
				failures = append(failures, failure.ItemIdentifier)
			}
			assert.Equal(t, tt.wantFailures, failures)
		})
	}
}
