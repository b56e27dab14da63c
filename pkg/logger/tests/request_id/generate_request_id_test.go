package request_id_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblognest/pkg/logger"
)

func TestGenerateRequestID(t *testing.T) {
	t.Run("generates non-empty string", func(t *testing.T) {
		id := logger.GenerateRequestID()

		assert.NotEmpty(t, id, "Generated request ID should not be empty")
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		id1 := logger.GenerateRequestID()
		id2 := logger.GenerateRequestID()

		assert.NotEqual(t, id1, id2, "Generated IDs should be unique")
	})

	t.Run("generates valid UUID v4", func(t *testing.T) {
		id := logger.GenerateRequestID()

		parsedUUID, err := uuid.Parse(id)
		require.NoError(t, err, "Generated ID should be a valid UUID")
		assert.Equal(t, uuid.Version(4), parsedUUID.Version(), "Should generate UUID version 4")
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Run("round trips the request ID through the context", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-123")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-123", id)
	})

	t.Run("empty context has no request ID", func(t *testing.T) {
		id, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
		assert.Empty(t, id)
	})
}
