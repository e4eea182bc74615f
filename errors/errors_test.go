package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesTaxonomy(t *testing.T) {
	err := Inputf("latitude %f out of range", 123.0)
	wrapped := Wrap(err, "validating birth input")

	assert.True(t, IsInput(wrapped))
	assert.False(t, IsConfiguration(wrapped))
	assert.Contains(t, wrapped.Error(), "validating birth input")
}

func TestTaxonomyMarkersAreDisjoint(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{"input", Inputf("bad latitude"), IsInput},
		{"configuration", Configf("unknown ayanamsa %q", "Nope"), IsConfiguration},
		{"ephemeris", Ephemerisf("provider returned %f", 400.0), IsEphemeris},
		{"invariant", Invariantf("house partition broken"), IsInvariant},
	}
	checks := []func(error) bool{IsInput, IsConfiguration, IsEphemeris, IsInvariant}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched := 0
			for _, check := range checks {
				if check(tc.err) {
					matched++
				}
			}
			require.Equal(t, 1, matched, "error should match exactly one taxonomy kind")
			assert.True(t, tc.want(tc.err))
		})
	}
}

func TestWrapEphemeris(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := WrapEphemeris(cause, "fetching Mars position")

	assert.True(t, IsEphemeris(err))
	assert.Contains(t, err.Error(), "fetching Mars position")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNilErrorChecks(t *testing.T) {
	assert.False(t, IsInput(nil))
	assert.False(t, IsConfiguration(nil))
	assert.False(t, IsEphemeris(nil))
	assert.False(t, IsInvariant(nil))
}
