package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/interfaces"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

// ErrMalformedSequenceMessage is returned for a queue message that is not a sequence update
var ErrMalformedSequenceMessage = errors.New("malformed sequence update message")

// SequenceMessage is the queue payload announcing a new invoice counter.
// Event is optional; when set it must name the invoice sequence event.
type SequenceMessage struct {
	Event string `json:"event,omitempty"`
	Value *int   `json:"value"`
}

// DecodeSequenceMessage parses a queue message body into a sequence update
func DecodeSequenceMessage(body string) (business.SequenceUpdate, error) {
	var msg SequenceMessage
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		return business.SequenceUpdate{}, fmt.Errorf("%w: %v", ErrMalformedSequenceMessage, err)
	}
	if msg.Event != "" && msg.Event != constants.ExpenseInvoiceSequenceUpdatedEvent {
		return business.SequenceUpdate{}, fmt.Errorf("%w: unexpected event %q", ErrMalformedSequenceMessage, msg.Event)
	}
	if msg.Value == nil {
		return business.SequenceUpdate{}, fmt.Errorf("%w: missing value", ErrMalformedSequenceMessage)
	}
	return business.SequenceUpdate{Value: *msg.Value}, nil
}

// SequenceListenerConfig tunes the queue polling loop
type SequenceListenerConfig struct {
	QueueURL            string
	MaxMessages         int32
	WaitTimeSeconds     int32
	InitialRetryBackoff time.Duration
	MaxRetryBackoff     time.Duration
}

// DefaultSequenceListenerConfig returns long-polling defaults for a queue
func DefaultSequenceListenerConfig(queueURL string) SequenceListenerConfig {
	return SequenceListenerConfig{
		QueueURL:            queueURL,
		MaxMessages:         10,
		WaitTimeSeconds:     20,
		InitialRetryBackoff: 500 * time.Millisecond,
		MaxRetryBackoff:     30 * time.Second,
	}
}

// SequenceListener long-polls an SQS queue and hands every sequence update to a sink
type SequenceListener struct {
	client interfaces.SQSAPI
	sink   interfaces.SequenceSink
	config SequenceListenerConfig
	logger *zap.Logger
}

// NewSequenceListener creates a listener over an SQS client
func NewSequenceListener(client interfaces.SQSAPI, sink interfaces.SequenceSink, config SequenceListenerConfig) *SequenceListener {
	return &SequenceListener{
		client: client,
		sink:   sink,
		config: config,
		logger: logger.WithComponent(logger.ComponentSequence),
	}
}

// Run polls until ctx is cancelled. Receive failures are retried with
// exponential backoff; Run returns nil on cancellation.
func (l *SequenceListener) Run(ctx context.Context) error {
	l.logger.Info("Sequence listener started", zap.String("queue_url", l.config.QueueURL))
	for {
		if ctx.Err() != nil {
			l.logger.Info("Sequence listener stopped")
			return nil
		}
		if _, err := l.PollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				l.logger.Info("Sequence listener stopped")
				return nil
			}
			return err
		}
	}
}

// PollOnce performs one receive and processes what it got. It returns the
// number of updates applied.
func (l *SequenceListener) PollOnce(ctx context.Context) (int, error) {
	var output *sqs.ReceiveMessageOutput
	operation := func() error {
		var err error
		output, err = l.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(l.config.QueueURL),
			MaxNumberOfMessages: l.config.MaxMessages,
			WaitTimeSeconds:     l.config.WaitTimeSeconds,
		})
		if err != nil {
			l.logger.Warn("Failed to receive sequence messages", zap.Error(err))
		}
		return err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = l.config.InitialRetryBackoff
	expBackoff.MaxInterval = l.config.MaxRetryBackoff
	expBackoff.MaxElapsedTime = 0

	if err := backoff.Retry(operation, backoff.WithContext(expBackoff, ctx)); err != nil {
		return 0, fmt.Errorf("failed to receive sequence messages: %w", err)
	}

	applied := 0
	for _, message := range output.Messages {
		if l.handleMessage(message) {
			applied++
		}
		l.deleteMessage(ctx, message)
	}
	return applied, nil
}

// handleMessage applies one message; malformed messages are dropped
func (l *SequenceListener) handleMessage(message types.Message) bool {
	body := aws.ToString(message.Body)
	update, err := DecodeSequenceMessage(body)
	if err != nil {
		l.logger.Error("Dropping sequence message",
			zap.String("message_id", aws.ToString(message.MessageId)),
			zap.Error(err))
		return false
	}

	l.sink.Apply(update)
	l.logger.Debug("Applied sequence update",
		zap.String("message_id", aws.ToString(message.MessageId)),
		zap.Int("next", update.Value))
	return true
}

func (l *SequenceListener) deleteMessage(ctx context.Context, message types.Message) {
	_, err := l.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(l.config.QueueURL),
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		l.logger.Warn("Failed to delete sequence message",
			zap.String("message_id", aws.ToString(message.MessageId)),
			zap.Error(err))
	}
}
