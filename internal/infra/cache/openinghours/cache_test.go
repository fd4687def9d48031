package openinghours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/logger"
)

type fakeClient struct {
	data   map[string]string
	getErr error
	setErr error
	ttls   map[string]time.Duration
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

type fakeSource struct {
	hours *domain.OpeningHours
	err   error
	calls int
}

func (f *fakeSource) GetOpeningHours(_ context.Context, _ int64) (*domain.OpeningHours, error) {
	f.calls++
	return f.hours, f.err
}

func sampleHours() *domain.OpeningHours {
	var hours domain.OpeningHours
	hours[0] = []domain.OpenPeriod{{Begin: "08:00", End: "12:00"}, {Begin: "13:00", End: "20:00"}}
	hours[6] = []domain.OpenPeriod{{Begin: "10:00", End: "00:00"}}
	return &hours
}

func TestCache_ReadThrough(t *testing.T) {
	client := newFakeClient()
	source := &fakeSource{hours: sampleHours()}
	cache := NewCache(client, source, time.Minute, logger.NewDiscard())

	first, err := cache.GetOpeningHours(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, sampleHours(), first)
	assert.Equal(t, time.Minute, client.ttls[cacheKey(5)])

	second, err := cache.GetOpeningHours(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, sampleHours(), second)
	assert.Equal(t, 1, source.calls)
}

func TestCache_RedisDownFallsBackToSource(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("connection refused")
	client.setErr = errors.New("connection refused")
	source := &fakeSource{hours: sampleHours()}
	cache := NewCache(client, source, time.Minute, logger.NewDiscard())

	got, err := cache.GetOpeningHours(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, sampleHours(), got)
	assert.Equal(t, 1, source.calls)
}

func TestCache_CorruptedEntryIsReloaded(t *testing.T) {
	client := newFakeClient()
	client.data[cacheKey(2)] = "{not json"
	source := &fakeSource{hours: sampleHours()}
	cache := NewCache(client, source, time.Minute, logger.NewDiscard())

	got, err := cache.GetOpeningHours(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, sampleHours(), got)
	assert.Equal(t, 1, source.calls)
}

func TestCache_SourceErrorIsReturned(t *testing.T) {
	sourceErr := errors.New("not found")
	cache := NewCache(newFakeClient(), &fakeSource{err: sourceErr}, time.Minute, logger.NewDiscard())

	_, err := cache.GetOpeningHours(context.Background(), 3)
	assert.ErrorIs(t, err, sourceErr)
}
