package helpers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// NullableTimestamptzToTime converts a nullable pgtype.Timestamptz to *time.Time
func NullableTimestamptzToTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// NullableInt8ToInt64 converts a nullable pgtype.Int8 to *int64
func NullableInt8ToInt64(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

// NullableInt4ToInt32 converts a nullable pgtype.Int4 to *int32
func NullableInt4ToInt32(v pgtype.Int4) *int32 {
	if !v.Valid {
		return nil
	}
	i := v.Int32
	return &i
}
