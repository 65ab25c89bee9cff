package main

import (
	"context"
	"errors"
	"fmt"

	awsclient "github.com/cyphera/cyphera-expense/libs/go/client/aws"
	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/helpers"
	"github.com/cyphera/cyphera-expense/libs/go/interfaces"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/services"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Application holds the application dependencies
type Application struct {
	sequentialService interfaces.SequentialService
	logger            *zap.Logger
	configKey         string
}

func main() {
	stage, _ := helpers.StageFromEnv()
	logger.InitLogger(stage)
	zapLogger := logger.WithComponent(logger.ComponentSequence)
	defer logger.Sync()

	app, err := createApplication(context.Background(), zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create application", zap.Error(err))
	}

	lambda.Start(app.handleSequenceEvent)
}

func createApplication(ctx context.Context, zapLogger *zap.Logger) (*Application, error) {
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create secrets manager client: %w", err)
	}
	databaseURL, err := secretsClient.GetSecretString(ctx, constants.EnvDatabaseSecretARN, constants.EnvDatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database URL: %w", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return newApplication(services.NewSequentialService(db.New(pool)), zapLogger), nil
}

func newApplication(sequentialService interfaces.SequentialService, zapLogger *zap.Logger) *Application {
	return &Application{
		sequentialService: sequentialService,
		logger:            zapLogger,
		configKey:         constants.ExpenseInvoiceSequenceConfigKey,
	}
}

// handleSequenceEvent persists every sequence update of a batch. Malformed
// messages are dropped; store failures are handed back to SQS for redelivery.
func (app *Application) handleSequenceEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	app.logger.Info("Processing sequence event", zap.Int("message_count", len(event.Records)))

	response := events.SQSEventResponse{BatchItemFailures: []events.SQSBatchItemFailure{}}
	applied := 0
	dropped := 0

	for _, record := range event.Records {
		err := app.processSequenceMessage(ctx, record)
		switch {
		case err == nil:
			applied++
		case errors.Is(err, awsclient.ErrMalformedSequenceMessage):
			dropped++
			app.logger.Warn("Dropping malformed sequence message",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
		default:
			app.logger.Error("Sequence message processing failed",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	app.logger.Info("Sequence processing complete",
		zap.Int("total_messages", len(event.Records)),
		zap.Int("applied", applied),
		zap.Int("dropped", dropped),
		zap.Int("failed", len(response.BatchItemFailures)))

	return response, nil
}

func (app *Application) processSequenceMessage(ctx context.Context, record events.SQSMessage) error {
	update, err := awsclient.DecodeSequenceMessage(record.Body)
	if err != nil {
		return err
	}

	seq, err := app.sequentialService.ApplyUpdate(ctx, app.configKey, update)
	if err != nil {
		return err
	}

	app.logger.Debug("Sequence update stored",
		zap.String("message_id", record.MessageId),
		zap.String("key", app.configKey),
		zap.Int("next", seq.Next))
	return nil
}
