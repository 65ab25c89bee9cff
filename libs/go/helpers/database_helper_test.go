package helpers

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableConversions(t *testing.T) {
	t.Run("timestamptz", func(t *testing.T) {
		at := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

		got := NullableTimestamptzToTime(pgtype.Timestamptz{Time: at, Valid: true})
		require.NotNil(t, got)
		assert.True(t, at.Equal(*got))
		assert.Nil(t, NullableTimestamptzToTime(pgtype.Timestamptz{}))
	})

	t.Run("int8", func(t *testing.T) {
		got := NullableInt8ToInt64(pgtype.Int8{Int64: 42, Valid: true})
		require.NotNil(t, got)
		assert.Equal(t, int64(42), *got)
		assert.Nil(t, NullableInt8ToInt64(pgtype.Int8{Int64: 42}))
	})

	t.Run("int4", func(t *testing.T) {
		got := NullableInt4ToInt32(pgtype.Int4{Int32: 0, Valid: true})
		require.NotNil(t, got)
		assert.Equal(t, int32(0), *got)
		assert.Nil(t, NullableInt4ToInt32(pgtype.Int4{Int32: 3}))
	})
}
