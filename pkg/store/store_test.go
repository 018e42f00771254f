package store

import (
	"context"
	"testing"

	"github.com/cuemby/sysdb/pkg/datum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreHostCreateAndUpdate(t *testing.T) {
	s := New()
	ctx := context.Background()

	res, err := s.StoreHost(ctx, "a", 1)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	res, err = s.StoreHost(ctx, "A", 2) // case-insensitive, same host
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	res, err = s.StoreHost(ctx, "a", 1) // stale
	require.NoError(t, err)
	assert.Equal(t, ResultUnchanged, res)

	res, err = s.StoreHost(ctx, "A", 1) // still stale
	require.NoError(t, err)
	assert.Equal(t, ResultUnchanged, res)

	res, err = s.StoreHost(ctx, "A", 3)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	assert.True(t, s.HasHost("a"))
	h, ok := s.GetHost("A")
	require.True(t, ok)
	assert.EqualValues(t, 3, h.LastUpdate())
}

func TestStoreHostRejectsEmptyName(t *testing.T) {
	s := New()
	_, err := s.StoreHost(context.Background(), "", 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStoreServiceRequiresExistingHost(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.StoreService(ctx, "ghost", "svc", 1)
	assert.ErrorIs(t, err, ErrMissingParent)

	_, err = s.StoreHost(ctx, "h", 1)
	require.NoError(t, err)

	res, err := s.StoreService(ctx, "h", "svc", 1)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	h, _ := s.GetHost("h")
	assert.Len(t, h.Services(), 1)
}

func TestStoreAttributeValueSemantics(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, must(s.StoreHost(ctx, "l", 1)))

	res, err := s.StoreAttribute(ctx, "l", "k1", datum.String("v1"), 1)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	res, err = s.StoreAttribute(ctx, "l", "k1", datum.String("v1"), 2)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res, "timestamp advanced, so this still counts as stored")

	res, err = s.StoreAttribute(ctx, "l", "k1", datum.String("v3"), 2)
	require.NoError(t, err)
	assert.Equal(t, ResultUnchanged, res, "same timestamp as last_update must not apply the new value")

	h, _ := s.GetHost("l")
	attr, ok := h.Attribute("k1")
	require.True(t, ok)
	assert.Equal(t, "v1", attr.Value().Str(), "the rejected-at-equal-ts value must not have applied")
}

func TestStoreAttributeMissingHost(t *testing.T) {
	s := New()
	_, err := s.StoreAttribute(context.Background(), "k", "k", datum.String("v"), 1)
	assert.ErrorIs(t, err, ErrMissingParent)
}

func TestStoreMetricDescriptorSemantics(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, must(s.StoreHost(ctx, "l", 1)))

	res, err := s.StoreMetric(ctx, "l", "m1", nil, 1)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	store1 := &StoreDescriptor{Type: "rrd", ID: "store1"}

	res, err = s.StoreMetric(ctx, "l", "m1", store1, 2)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	res, err = s.StoreMetric(ctx, "l", "m1", store1, 3)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res, "timestamp advanced even though the descriptor value repeats")

	res, err = s.StoreMetric(ctx, "l", "m1", nil, 3)
	require.NoError(t, err)
	assert.Equal(t, ResultUnchanged, res, "a null descriptor at the current timestamp must not revert it")

	h, _ := s.GetHost("l")
	m, ok := h.Metric("m1")
	require.True(t, ok)
	require.NotNil(t, m.Descriptor())
	assert.Equal(t, "store1", m.Descriptor().ID)
}

func TestStoreServiceAttributeAndMetricAttribute(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, must(s.StoreHost(ctx, "l", 1)))
	require.NoError(t, must(s.StoreService(ctx, "l", "svc", 1)))
	require.NoError(t, must(s.StoreMetric(ctx, "l", "m1", nil, 1)))

	_, err := s.StoreServiceAttribute(ctx, "l", "nosuch", "k", datum.Int(1), 1)
	assert.ErrorIs(t, err, ErrMissingParent)

	res, err := s.StoreServiceAttribute(ctx, "l", "svc", "k", datum.Int(1), 2)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	res, err = s.StoreMetricAttribute(ctx, "l", "m1", "k", datum.Int(1), 2)
	require.NoError(t, err)
	assert.Equal(t, ResultStored, res)

	h, _ := s.GetHost("l")
	sv, _ := h.Service("svc")
	assert.Len(t, sv.Attributes(), 1)
	m, _ := h.Metric("m1")
	assert.Len(t, m.Attributes(), 1)
}

func TestBackendAppendedOnceCaseInsensitively(t *testing.T) {
	s := New()
	ctx := WithBackend(context.Background(), "collectd")

	_, err := s.StoreHost(ctx, "h", 1)
	require.NoError(t, err)

	ctx2 := WithBackend(context.Background(), "COLLECTD")
	_, err = s.StoreHost(ctx2, "h", 2)
	require.NoError(t, err)

	h, _ := s.GetHost("h")
	assert.Equal(t, []string{"collectd"}, h.Backends())
}

func TestClearEmptiesStore(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, must(s.StoreHost(ctx, "h", 1)))

	s.Clear()
	assert.False(t, s.HasHost("h"))
	hosts, services, metricsN, attrs := s.Sizes()
	assert.Zero(t, hosts)
	assert.Zero(t, services)
	assert.Zero(t, metricsN)
	assert.Zero(t, attrs)
}

func TestSizes(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, must(s.StoreHost(ctx, "h", 1)))
	require.NoError(t, must(s.StoreService(ctx, "h", "svc", 1)))
	require.NoError(t, must(s.StoreAttribute(ctx, "h", "k1", datum.Int(1), 1)))
	require.NoError(t, must(s.StoreServiceAttribute(ctx, "h", "svc", "k2", datum.Int(2), 1)))

	hosts, services, metricsN, attrs := s.Sizes()
	assert.Equal(t, 1, hosts)
	assert.Equal(t, 1, services)
	assert.Equal(t, 0, metricsN)
	assert.Equal(t, 2, attrs)
}

func must(_ Result, err error) error { return err }
