package tween

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "Valid once",
			config:  Config{Kind: ElasticOut, Initial: 0, Final: 1, Duration: 0.75},
			wantErr: nil,
		},
		{
			name:    "Valid zero duration once",
			config:  Config{Kind: Linear, Final: 1},
			wantErr: nil,
		},
		{
			name:    "Valid extrapolate zero duration",
			config:  Config{Kind: Linear, Final: 1, Mode: ModeExtrapolate},
			wantErr: nil,
		},
		{
			name:    "Unknown kind",
			config:  Config{Kind: Kind(99), Final: 1, Duration: 1},
			wantErr: ErrUnknownKind,
		},
		{
			name:    "Negative kind",
			config:  Config{Kind: Kind(-1), Final: 1, Duration: 1},
			wantErr: ErrUnknownKind,
		},
		{
			name:    "Custom kind",
			config:  Config{Kind: Custom, Final: 1, Duration: 1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "NaN initial",
			config:  Config{Kind: Linear, Initial: math.NaN(), Final: 1, Duration: 1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Infinite final",
			config:  Config{Kind: Linear, Final: math.Inf(-1), Duration: 1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Negative duration",
			config:  Config{Kind: Linear, Final: 1, Duration: -1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Infinite duration",
			config:  Config{Kind: Linear, Final: 1, Duration: math.Inf(1)},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Loop zero duration",
			config:  Config{Kind: Linear, Final: 1, Mode: ModeLoop},
			wantErr: ErrZeroDuration,
		},
		{
			name:    "Oscillate zero duration",
			config:  Config{Kind: SineInOut, Final: 1, Mode: ModeOscillate},
			wantErr: ErrZeroDuration,
		},
		{
			name:    "Unknown mode",
			config:  Config{Kind: Linear, Final: 1, Duration: 1, Mode: Mode(7)},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestBuild_Modes tests that each mode produces the matching wrapper.
func TestBuild_Modes(t *testing.T) {
	base := Config{Kind: Linear, Initial: 0, Final: 100, Duration: 4}

	tests := []struct {
		mode     Mode
		finite   bool
		at       float64
		expected float64
	}{
		{ModeOnce, true, 1, 25},
		{ModeLoop, false, 5, 25},
		{ModeOscillate, false, 6, 50},
		{ModeExtrapolate, false, 8, 200},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			c := base
			c.Mode = tt.mode

			tw, err := Build(&c)
			require.NoError(t, err)
			require.NotNil(t, tw)

			assert.Equal(t, tt.finite, tw.IsFinite())
			assert.Equal(t, 4.0, tw.Duration())
			assert.InDelta(t, tt.expected, tw.Run(tt.at), 1e-9)
		})
	}
}

// TestBuild_Errors tests that invalid configurations return no tween.
func TestBuild_Errors(t *testing.T) {
	tw, err := Build(nil)
	assert.Nil(t, tw)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	tw, err = Build(&Config{Kind: Linear, Final: 1, Mode: ModeLoop})
	assert.Nil(t, tw)
	assert.ErrorIs(t, err, ErrZeroDuration)
}

// TestBuild_DrivenOnce tests a configured tween under a fixed-step driver.
func TestBuild_DrivenOnce(t *testing.T) {
	tw, err := Build(&Config{Kind: QuadOut, Initial: 10, Final: 20, Duration: 1})
	require.NoError(t, err)

	var last float64
	n := 0
	for v := range NewFixedTweener(tw, 0.125).All() {
		last = v
		n++
	}
	assert.Equal(t, 8, n)
	assert.Equal(t, 20.0, last)
}

// TestParseKind tests name normalization and the round trip through String.
func TestParseKind(t *testing.T) {
	for _, name := range []string{"elastic-in-out", "ElasticInOut", "elastic_in_out", "ELASTIC IN OUT"} {
		k, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, ElasticInOut, k, name)
	}

	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	k, err := ParseKind("custom")
	require.NoError(t, err)
	assert.Equal(t, Custom, k)

	_, err = ParseKind("wobble")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), `"wobble"`)
}

// TestKind_String tests names, including out-of-range kinds.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "bounce-in-out", BounceInOut.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

// TestKinds tests the catalog listing.
func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, int(Custom))
	assert.Equal(t, Linear, kinds[0])
	assert.NotContains(t, kinds, Custom)

	elastic := 0
	for _, k := range kinds {
		if k.IsElastic() {
			elastic++
		}
	}
	assert.Equal(t, 3, elastic)
}

// TestParseMode tests mode names.
func TestParseMode(t *testing.T) {
	m, err := ParseMode("Oscillate")
	require.NoError(t, err)
	assert.Equal(t, ModeOscillate, m)

	for _, mode := range []Mode{ModeOnce, ModeLoop, ModeOscillate, ModeExtrapolate} {
		got, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	_, err = ParseMode("bounce")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
