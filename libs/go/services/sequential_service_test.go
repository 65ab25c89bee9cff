package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/mocks"
	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSequentialService_Format(t *testing.T) {
	service := services.NewSequentialService(nil)
	at := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		seq     business.Sequential
		want    string
		wantErr error
	}{
		{"two digit year", business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYY, Next: 1}, "DEP-25-0001", nil},
		{"four digit year", business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYYYY, Next: 42}, "DEP-2025-0042", nil},
		{"year and month", business.Sequential{Prefix: "DEV", DynamicSequence: business.DateFormatYYMM, Next: 7}, "DEV-25-03-0007", nil},
		{"full year and month", business.Sequential{Prefix: "DEV", DynamicSequence: business.DateFormatYYYYMM, Next: 12345}, "DEV-2025-03-12345", nil},
		{"empty prefix", business.Sequential{Prefix: "", DynamicSequence: business.DateFormatYY, Next: 1}, "", services.ErrInvalidSequential},
		{"prefix with separator", business.Sequential{Prefix: "A-B", DynamicSequence: business.DateFormatYY, Next: 1}, "", services.ErrInvalidSequential},
		{"negative counter", business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYY, Next: -1}, "", services.ErrInvalidSequential},
		{"unknown format", business.Sequential{Prefix: "DEP", DynamicSequence: "dd-MM", Next: 1}, "", services.ErrUnsupportedDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Format(tt.seq, at)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequentialService_Parse(t *testing.T) {
	service := services.NewSequentialService(nil)

	tests := []struct {
		name    string
		value   string
		want    business.Sequential
		wantErr error
	}{
		{"two digit year", "DEP-25-0001", business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYY, Next: 1}, nil},
		{"full year and month", "DEV-2025-03-0042", business.Sequential{Prefix: "DEV", DynamicSequence: business.DateFormatYYYYMM, Next: 42}, nil},
		{"empty prefix", "-25-0001", business.Sequential{}, services.ErrInvalidSequential},
		{"too few parts", "DEP-0001", business.Sequential{}, services.ErrInvalidSequential},
		{"too many parts", "A-B-25-03-0001", business.Sequential{}, services.ErrInvalidSequential},
		{"counter not a number", "DEP-25-00x1", business.Sequential{}, services.ErrInvalidSequential},
		{"bad month", "DEP-25-13-0001", business.Sequential{}, services.ErrInvalidSequential},
		{"odd date shape", "DEP-202-0001", business.Sequential{}, services.ErrUnsupportedDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Parse(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequentialService_RoundTrip(t *testing.T) {
	service := services.NewSequentialService(nil)
	at := time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)

	formats := []business.DateFormat{
		business.DateFormatYY, business.DateFormatYYYY, business.DateFormatYYMM, business.DateFormatYYYYMM,
	}
	for _, prefix := range []string{"DEP", "FAC", "X", "QUOTE2024"} {
		for _, format := range formats {
			for _, next := range []int{0, 1, 99, 1000, 9999, 123456} {
				seq := business.Sequential{Prefix: prefix, DynamicSequence: format, Next: next}
				formatted, err := service.Format(seq, at)
				require.NoError(t, err)

				parsed, err := service.Parse(formatted)
				require.NoError(t, err, formatted)
				assert.Equal(t, seq, parsed)
			}
		}
	}
}

func TestSequentialService_GetConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewSequentialService(mockQuerier)
	ctx := context.Background()

	t.Run("decodes config", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetSequentialConfig(ctx, "expense-invoice_sequence").
			Return(db.AppConfig{Key: "expense-invoice_sequence", Value: []byte(`{"prefix":"DEP","dynamicSequence":"yy-MM","next":12}`)}, nil)

		seq, err := service.GetConfig(ctx, "expense-invoice_sequence")
		require.NoError(t, err)
		assert.Equal(t, business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYYMM, Next: 12}, seq)
	})

	t.Run("database error", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetSequentialConfig(ctx, "missing").
			Return(db.AppConfig{}, errors.New("no rows"))

		_, err := service.GetConfig(ctx, "missing")
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetSequentialConfig(ctx, "broken").
			Return(db.AppConfig{Key: "broken", Value: []byte(`{`)}, nil)

		_, err := service.GetConfig(ctx, "broken")
		assert.ErrorIs(t, err, services.ErrInvalidSequential)
	})
}

func TestSequenceTracker(t *testing.T) {
	tracker := services.NewSequenceTracker(business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYY, Next: 3})

	tracker.Apply(business.SequenceUpdate{Value: 10})
	assert.Equal(t, 10, tracker.Current().Next)

	tracker.Apply(business.SequenceUpdate{Value: 4})
	assert.Equal(t, 4, tracker.Current().Next, "last update wins")
	assert.Equal(t, "DEP", tracker.Current().Prefix)

	tracker.Replace(business.Sequential{Prefix: "NEW", DynamicSequence: business.DateFormatYYYY, Next: 1})
	assert.Equal(t, "NEW", tracker.Current().Prefix)
}

func TestSequenceTracker_ConcurrentAccess(t *testing.T) {
	tracker := services.NewSequenceTracker(business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYY})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			tracker.Apply(business.SequenceUpdate{Value: v})
		}(i)
		go func() {
			defer wg.Done()
			_ = tracker.Current()
		}()
	}
	wg.Wait()

	next := tracker.Current().Next
	assert.GreaterOrEqual(t, next, 1)
	assert.LessOrEqual(t, next, 50)
}

func TestSequentialService_ApplyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewSequentialService(mockQuerier)
	ctx := context.Background()
	key := "expense-invoice_sequence"

	t.Run("overwrites next", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetSequentialConfig(ctx, key).
			Return(db.AppConfig{Key: key, Value: []byte(`{"prefix":"DEP","dynamicSequence":"yy","next":3}`)}, nil)
		mockQuerier.EXPECT().
			UpdateSequentialConfig(ctx, db.UpdateSequentialConfigParams{
				Key:   key,
				Value: []byte(`{"prefix":"DEP","dynamicSequence":"yy","next":17}`),
			}).
			Return(db.AppConfig{Key: key}, nil)

		seq, err := service.ApplyUpdate(ctx, key, business.SequenceUpdate{Value: 17})
		require.NoError(t, err)
		assert.Equal(t, 17, seq.Next)
		assert.Equal(t, "DEP", seq.Prefix)
	})

	t.Run("write fails", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetSequentialConfig(ctx, key).
			Return(db.AppConfig{Key: key, Value: []byte(`{"prefix":"DEP","dynamicSequence":"yy","next":3}`)}, nil)
		mockQuerier.EXPECT().
			UpdateSequentialConfig(ctx, gomock.Any()).
			Return(db.AppConfig{}, errors.New("read-only transaction"))

		_, err := service.ApplyUpdate(ctx, key, business.SequenceUpdate{Value: 4})
		assert.Error(t, err)
	})
}
