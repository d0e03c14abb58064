package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalDeck/internal/model"
)

func TestMockFetcher(t *testing.T) {
	m := NewMockFetcher()
	m.Payloads[model.KindOverview] = &model.Overview{Name: "IBM"}
	m.Failures[model.KindSignals] = &FetchError{Class: HTTPStatusError, Status: 500}

	res := m.Fetch(context.Background(), model.KindOverview, "IBM")
	require.True(t, res.OK())
	assert.Equal(t, "IBM", res.Payload.(*model.Overview).Name)

	res = m.Fetch(context.Background(), model.KindSignals, "IBM")
	assert.Equal(t, HTTPStatusError, ClassOf(res.Err))
	var fe *FetchError
	require.ErrorAs(t, res.Err, &fe)
	assert.Equal(t, "IBM", fe.Symbol)

	res = m.Fetch(context.Background(), model.KindSentiment, "IBM")
	assert.False(t, res.OK())

	assert.Equal(t, 1, m.Calls(model.KindOverview))
	assert.Equal(t, 0, m.Calls(model.KindExpert))
}

func TestFailure_ClassifiesBareErrors(t *testing.T) {
	res := Failure(model.KindOverview, "IBM", context.DeadlineExceeded)
	assert.Equal(t, NetworkError, ClassOf(res.Err))
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}
