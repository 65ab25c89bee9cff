//go:build lambda
// +build lambda

package main

import (
	"context"

	_ "github.com/cyphera/cyphera-expense/docs"
	"github.com/cyphera/cyphera-expense/apps/api/server"
	"github.com/cyphera/cyphera-expense/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Cyphera Expense API
// @version         1.0
// @description     Expense invoice, quotation and payment calculations

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/v1

var ginLambda *ginadapter.GinLambda

func init() {
	r := gin.Default()

	// Also initializes the logger for the configured stage
	server.InitializeHandlers()
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
