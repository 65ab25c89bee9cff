package aws_test

import (
	"context"
	"errors"
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	awsclient "github.com/cyphera/cyphera-expense/libs/go/client/aws"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/mocks"
	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

func init() {
	logger.InitLogger("test")
}

func testListenerConfig() awsclient.SequenceListenerConfig {
	config := awsclient.DefaultSequenceListenerConfig("https://sqs.eu-west-3.amazonaws.com/123/expense-sequence")
	config.WaitTimeSeconds = 0
	config.InitialRetryBackoff = time.Millisecond
	config.MaxRetryBackoff = 5 * time.Millisecond
	return config
}

func TestDecodeSequenceMessage(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{"bare value", `{"value":42}`, 42, false},
		{"with event", `{"event":"expense-invoice-sequence-updated","value":7}`, 7, false},
		{"zero value", `{"value":0}`, 0, false},
		{"other event", `{"event":"invoice-sequence-updated","value":7}`, 0, true},
		{"missing value", `{"event":"expense-invoice-sequence-updated"}`, 0, true},
		{"not json", `value=3`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update, err := awsclient.DecodeSequenceMessage(tt.body)
			if tt.wantErr {
				assert.ErrorIs(t, err, awsclient.ErrMalformedSequenceMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, update.Value)
		})
	}
}

func TestSequenceListener_PollOnce(t *testing.T) {
	mockSQS := mocks.NewMockSQSAPIForTest(t)
	tracker := services.NewSequenceTracker(business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYY, Next: 1})
	listener := awsclient.NewSequenceListener(mockSQS, tracker, testListenerConfig())
	ctx := context.Background()

	mockSQS.EXPECT().
		ReceiveMessage(ctx, gomock.Any()).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{
			{MessageId: awssdk.String("m1"), ReceiptHandle: awssdk.String("r1"), Body: awssdk.String(`{"value":5}`)},
			{MessageId: awssdk.String("m2"), ReceiptHandle: awssdk.String("r2"), Body: awssdk.String(`garbage`)},
			{MessageId: awssdk.String("m3"), ReceiptHandle: awssdk.String("r3"), Body: awssdk.String(`{"value":9}`)},
		}}, nil)
	mockSQS.EXPECT().
		DeleteMessage(ctx, gomock.Any()).
		Return(&sqs.DeleteMessageOutput{}, nil).
		Times(3)

	applied, err := listener.PollOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, 9, tracker.Current().Next)
}

func TestSequenceListener_RetriesReceive(t *testing.T) {
	mockSQS := mocks.NewMockSQSAPIForTest(t)
	tracker := services.NewSequenceTracker(business.Sequential{})
	listener := awsclient.NewSequenceListener(mockSQS, tracker, testListenerConfig())
	ctx := context.Background()

	gomock.InOrder(
		mockSQS.EXPECT().ReceiveMessage(ctx, gomock.Any()).Return(nil, errors.New("throttled")),
		mockSQS.EXPECT().ReceiveMessage(ctx, gomock.Any()).Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{
			{MessageId: awssdk.String("m1"), ReceiptHandle: awssdk.String("r1"), Body: awssdk.String(`{"value":3}`)},
		}}, nil),
	)
	mockSQS.EXPECT().DeleteMessage(ctx, gomock.Any()).Return(&sqs.DeleteMessageOutput{}, nil)

	applied, err := listener.PollOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 3, tracker.Current().Next)
}

func TestSequenceListener_RunStopsOnCancel(t *testing.T) {
	mockSQS := mocks.NewMockSQSAPIForTest(t)
	tracker := services.NewSequenceTracker(business.Sequential{})
	listener := awsclient.NewSequenceListener(mockSQS, tracker, testListenerConfig())
	ctx, cancel := context.WithCancel(context.Background())

	mockSQS.EXPECT().
		ReceiveMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *sqs.ReceiveMessageInput, ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			cancel()
			return &sqs.ReceiveMessageOutput{}, nil
		})

	assert.NoError(t, listener.Run(ctx))
}
