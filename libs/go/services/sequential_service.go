package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"go.uber.org/zap"
)

var (
	// ErrInvalidSequential is returned for a malformed sequential number or config
	ErrInvalidSequential = errors.New("invalid sequential")
	// ErrUnsupportedDateFormat is returned for an unknown date token
	ErrUnsupportedDateFormat = errors.New("unsupported sequential date format")
)

var dateFormatLayouts = map[business.DateFormat]string{
	business.DateFormatYY:     "06",
	business.DateFormatYYYY:   "2006",
	business.DateFormatYYMM:   "06-01",
	business.DateFormatYYYYMM: "2006-01",
}

// SequentialService formats and parses document sequential numbers of the
// form PREFIX-<date>-<counter>, e.g. DEP-2025-0001 or DEP-25-03-0042.
type SequentialService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewSequentialService creates a new sequential service
func NewSequentialService(queries db.Querier) *SequentialService {
	return &SequentialService{
		queries: queries,
		logger:  logger.WithComponent(logger.ComponentSequence),
	}
}

// Format renders a sequential for a document dated at
func (s *SequentialService) Format(seq business.Sequential, at time.Time) (string, error) {
	if seq.Prefix == "" {
		return "", fmt.Errorf("%w: empty prefix", ErrInvalidSequential)
	}
	if strings.Contains(seq.Prefix, constants.SequentialSeparator) {
		return "", fmt.Errorf("%w: prefix %q contains %q", ErrInvalidSequential, seq.Prefix, constants.SequentialSeparator)
	}
	if seq.Next < 0 {
		return "", fmt.Errorf("%w: negative counter %d", ErrInvalidSequential, seq.Next)
	}
	layout, ok := dateFormatLayouts[seq.DynamicSequence]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDateFormat, seq.DynamicSequence)
	}

	return strings.Join([]string{
		seq.Prefix,
		at.Format(layout),
		fmt.Sprintf("%0*d", constants.SequentialCounterWidth, seq.Next),
	}, constants.SequentialSeparator), nil
}

// Parse recovers prefix, date format and counter from a formatted sequential.
// The date format is inferred from the shape of the date segment.
func (s *SequentialService) Parse(value string) (business.Sequential, error) {
	parts := strings.Split(value, constants.SequentialSeparator)
	if len(parts) < 3 || len(parts) > 4 || parts[0] == "" {
		return business.Sequential{}, fmt.Errorf("%w: %q", ErrInvalidSequential, value)
	}

	next, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || next < 0 {
		return business.Sequential{}, fmt.Errorf("%w: counter of %q", ErrInvalidSequential, value)
	}

	dateParts := parts[1 : len(parts)-1]
	format, err := inferDateFormat(dateParts)
	if err != nil {
		return business.Sequential{}, err
	}
	if _, err := time.Parse(dateFormatLayouts[format], strings.Join(dateParts, constants.SequentialSeparator)); err != nil {
		return business.Sequential{}, fmt.Errorf("%w: date of %q", ErrInvalidSequential, value)
	}

	return business.Sequential{
		Prefix:          parts[0],
		DynamicSequence: format,
		Next:            next,
	}, nil
}

func inferDateFormat(dateParts []string) (business.DateFormat, error) {
	switch {
	case len(dateParts) == 1 && len(dateParts[0]) == 2:
		return business.DateFormatYY, nil
	case len(dateParts) == 1 && len(dateParts[0]) == 4:
		return business.DateFormatYYYY, nil
	case len(dateParts) == 2 && len(dateParts[0]) == 2 && len(dateParts[1]) == 2:
		return business.DateFormatYYMM, nil
	case len(dateParts) == 2 && len(dateParts[0]) == 4 && len(dateParts[1]) == 2:
		return business.DateFormatYYYYMM, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDateFormat, strings.Join(dateParts, constants.SequentialSeparator))
}

// GetConfig loads a numbering scheme from the application config store
func (s *SequentialService) GetConfig(ctx context.Context, key string) (business.Sequential, error) {
	row, err := s.queries.GetSequentialConfig(ctx, key)
	if err != nil {
		return business.Sequential{}, fmt.Errorf("failed to get sequential config %s: %w", key, err)
	}

	var seq business.Sequential
	if err := json.Unmarshal(row.Value, &seq); err != nil {
		s.logger.Error("Failed to decode sequential config", zap.String("key", key), zap.Error(err))
		return business.Sequential{}, fmt.Errorf("%w: config %s", ErrInvalidSequential, key)
	}
	return seq, nil
}

// ApplyUpdate overwrites the stored next counter of a numbering scheme with a
// pushed value and returns the updated scheme.
func (s *SequentialService) ApplyUpdate(ctx context.Context, key string, update business.SequenceUpdate) (business.Sequential, error) {
	seq, err := s.GetConfig(ctx, key)
	if err != nil {
		return business.Sequential{}, err
	}
	seq.Next = update.Value

	value, err := json.Marshal(seq)
	if err != nil {
		return business.Sequential{}, fmt.Errorf("failed to encode sequential config %s: %w", key, err)
	}
	if _, err := s.queries.UpdateSequentialConfig(ctx, db.UpdateSequentialConfigParams{Key: key, Value: value}); err != nil {
		return business.Sequential{}, fmt.Errorf("failed to update sequential config %s: %w", key, err)
	}

	s.logger.Info("Sequential counter updated", zap.String("key", key), zap.Int("next", seq.Next))
	return seq, nil
}

// SequenceTracker holds the live numbering scheme of one document type.
// The queue listener writes to it while request handlers read.
type SequenceTracker struct {
	mu  sync.RWMutex
	seq business.Sequential
}

// NewSequenceTracker creates a tracker seeded with a scheme
func NewSequenceTracker(seq business.Sequential) *SequenceTracker {
	return &SequenceTracker{seq: seq}
}

// Current returns the tracked scheme
func (t *SequenceTracker) Current() business.Sequential {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.seq
}

// Replace swaps the whole scheme, e.g. after reloading it from the store
func (t *SequenceTracker) Replace(seq business.Sequential) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq = seq
}

// Apply overwrites the next counter with a pushed value. No merge: the last
// update wins.
func (t *SequenceTracker) Apply(update business.SequenceUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq.Next = update.Value
}
