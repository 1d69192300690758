package dynamo

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/movie-notes-api/internal/config"
)

// Conn is the shared DynamoDB handle. The client is built on first use and
// reused afterwards; concurrent first callers wait on the same attempt.
// A failed attempt is not retried.
type Conn struct {
	once sync.Once
	dial func(ctx context.Context) (API, error)
	api  API
	err  error
}

func NewConn(cfg *config.Config) *Conn {
	return &Conn{dial: func(ctx context.Context) (API, error) {
		c, err := newClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}}
}

// API returns the shared client, establishing it on the first call.
func (c *Conn) API(ctx context.Context) (API, error) {
	c.once.Do(func() {
		c.api, c.err = c.dial(ctx)
		if c.err == nil {
			slog.Info("dynamodb client ready")
		}
	})
	return c.api, c.err
}

// Ping checks that the database answers.
func (c *Conn) Ping(ctx context.Context) error {
	api, err := c.API(ctx)
	if err != nil {
		return err
	}
	if _, err := api.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(1)}); err != nil {
		return fmt.Errorf("ping dynamodb: %w", err)
	}
	return nil
}
