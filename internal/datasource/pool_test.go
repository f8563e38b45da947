package datasource

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlms/gcz-explorer/internal/config"
	"github.com/jdlms/gcz-explorer/internal/search"
)

func TestPingUnreachable(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "gcz",
		Password: "secret",
		DBName:   "postgres",
		SSLMode:  "disable",
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, cfg)
	require.NoError(t, err, "pool creation does not dial")
	defer pool.Close()

	start := time.Now()
	err = Ping(ctx, pool)
	require.Error(t, err)

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "ping", qe.Op)
	assert.Equal(t, search.DefaultErrorMessage, qe.UserMessage())
	assert.Less(t, time.Since(start), 2*time.Second, "a refused connection is reported without retrying")
}
