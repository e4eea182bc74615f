package batch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/teranos/jyotish/bhava"
	"github.com/teranos/jyotish/chart"
	"github.com/teranos/jyotish/ephem"
	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/graha"
)

func birthAt(instant time.Time) chart.BirthInput {
	return chart.BirthInput{
		Instant:     instant,
		Latitude:    28.6139,
		Longitude:   77.2090,
		Ayanamsa:    ephem.Lahiri,
		HouseSystem: bhava.Equal,
	}
}

func testInputs(n int) []chart.BirthInput {
	inputs := make([]chart.BirthInput, n)
	base := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)
	for i := range inputs {
		inputs[i] = birthAt(base.AddDate(0, 0, i))
	}
	return inputs
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero workers", Config{Workers: 0}},
		{"negative rate", Config{Workers: 1, ProviderRate: -1}},
		{"rate without burst", Config{Workers: 1, ProviderRate: 10, ProviderBurst: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsConfiguration(err))
		})
	}
}

func TestNewPoolRejectsBadSetup(t *testing.T) {
	_, err := NewPool(Config{Workers: 0}, ephem.MeanProvider{}, chart.DefaultStrengthWeights())
	require.Error(t, err)

	_, err = NewPool(DefaultConfig(), nil, chart.DefaultStrengthWeights())
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestRunProducesOneResultPerInput(t *testing.T) {
	pool, err := NewPool(DefaultConfig(), ephem.MeanProvider{}, chart.DefaultStrengthWeights())
	require.NoError(t, err)

	inputs := testInputs(10)
	results := pool.Run(context.Background(), inputs)
	require.Len(t, results, len(inputs))

	seen := make(map[string]bool)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, inputs[i], r.Input)
		require.NoError(t, r.Err)
		require.NotNil(t, r.Chart)
		assert.False(t, seen[r.JobID.String()], "duplicate job id")
		seen[r.JobID.String()] = true
	}
}

func TestRunIsolatesJobFailures(t *testing.T) {
	pool, err := NewPool(DefaultConfig(), ephem.MeanProvider{}, chart.DefaultStrengthWeights())
	require.NoError(t, err)

	inputs := testInputs(5)
	inputs[2].Latitude = 400 // invalid, the job must fail alone

	results := pool.Run(context.Background(), inputs)
	require.Len(t, results, 5)
	for i, r := range results {
		if i == 2 {
			require.Error(t, r.Err)
			assert.True(t, errors.IsInput(r.Err))
			assert.Nil(t, r.Chart)
			continue
		}
		require.NoError(t, r.Err, "job %d", i)
		require.NotNil(t, r.Chart)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	pool, err := NewPool(DefaultConfig(), ephem.MeanProvider{}, chart.DefaultStrengthWeights())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := testInputs(6)
	results := pool.Run(ctx, inputs)
	require.Len(t, results, 6)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		require.Error(t, r.Err, "job %d", i)
		assert.Nil(t, r.Chart)
	}
}

func TestRunResultsDeterministicAcrossWorkerCounts(t *testing.T) {
	inputs := testInputs(8)

	serial, err := NewPool(Config{Workers: 1}, ephem.MeanProvider{}, chart.DefaultStrengthWeights())
	require.NoError(t, err)
	parallel, err := NewPool(Config{Workers: 8}, ephem.MeanProvider{}, chart.DefaultStrengthWeights())
	require.NoError(t, err)

	a := serial.Run(context.Background(), inputs)
	b := parallel.Run(context.Background(), inputs)
	require.Len(t, b, len(a))
	for i := range a {
		require.NoError(t, a[i].Err)
		require.NoError(t, b[i].Err)
		assert.Equal(t, *a[i].Chart, *b[i].Chart, "job %d", i)
	}
}

func TestLimitedProviderThrottles(t *testing.T) {
	pool, err := NewPool(Config{Workers: 2, ProviderRate: 1000, ProviderBurst: 1},
		ephem.MeanProvider{}, chart.DefaultStrengthWeights())
	require.NoError(t, err)

	results := pool.Run(context.Background(), testInputs(2))
	for _, r := range results {
		require.NoError(t, r.Err)
	}
}

func TestLimitedProviderHonorsCancellation(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	limiter.Allow() // drain the burst token so Wait blocks
	lp := &limitedProvider{inner: ephem.MeanProvider{}, limiter: limiter}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := lp.Position(ctx, graha.Sun, time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, errors.IsEphemeris(err))
}
