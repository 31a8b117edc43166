package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/sounding-analysis/internal/observability"
	"github.com/couchcryptid/sounding-analysis/internal/sounding"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() sounding.Profile {
	return sounding.Profile{
		{Pressure: 1000, Height: 100, Temperature: 25, Dewpoint: 21, WindDirection: 160, WindSpeed: 15},
		{Pressure: 950, Height: 550, Temperature: 22, Dewpoint: 19, WindDirection: 180, WindSpeed: 25},
		{Pressure: 900, Height: 990, Temperature: 19, Dewpoint: 17, WindDirection: 190, WindSpeed: 30},
		{Pressure: 850, Height: 1450, Temperature: 17, Dewpoint: 14, WindDirection: 200, WindSpeed: 35},
		{Pressure: 800, Height: 1950, Temperature: 14, Dewpoint: 11, WindDirection: 210, WindSpeed: 40},
		{Pressure: 700, Height: 3050, Temperature: 8, Dewpoint: 2, WindDirection: 220, WindSpeed: 45},
		{Pressure: 600, Height: 4300, Temperature: -1, Dewpoint: -8, WindDirection: 230, WindSpeed: 50},
		{Pressure: 500, Height: 5750, Temperature: -12, Dewpoint: -20, WindDirection: 240, WindSpeed: 55},
	}
}

func rawProfileMessage(t *testing.T, profile sounding.Profile) RawMessage {
	t.Helper()
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	return RawMessage{Key: []byte("OUN-2024042618"), Value: data}
}

func TestSoundingTransformer_Transform(t *testing.T) {
	at := time.Date(2024, time.April, 26, 18, 0, 0, 0, time.UTC)
	sounding.SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { sounding.SetClock(nil) })

	tfm := NewTransformer(slog.Default(), observability.NewMetricsForTesting())
	out, err := tfm.Transform(context.Background(), rawProfileMessage(t, testProfile()))
	require.NoError(t, err)

	assert.Equal(t, []byte("OUN-2024042618"), out.Key)
	assert.Equal(t, "8", out.Headers["levels"])
	assert.Equal(t, at.Format(time.RFC3339), out.Headers["generated_at"])

	var result sounding.AnalysisResult
	require.NoError(t, json.Unmarshal(out.Value, &result))
	assert.Greater(t, result.SurfaceBased.CAPE, 0.0)
	assert.Equal(t, at, result.GeneratedAt)
}

func TestSoundingTransformer_TransformErrors(t *testing.T) {
	tfm := NewTransformer(slog.Default(), observability.NewMetricsForTesting())

	tests := []struct {
		name       string
		value      []byte
		wantReason string
	}{
		{"garbage payload", []byte("not json"), "decode"},
		{"too few levels", mustMarshal(testProfile()[:3]), "insufficient_data"},
		{"supersaturated level", mustMarshal(supersaturated()), "invalid_input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tfm.Transform(context.Background(), RawMessage{Value: tt.value})
			require.Error(t, err)
			assert.Equal(t, tt.wantReason, skipReason(err))
		})
	}
}

func TestSkipReason_Unrecognized(t *testing.T) {
	assert.Equal(t, "decode", skipReason(fmt.Errorf("some transport error")))
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func supersaturated() sounding.Profile {
	p := testProfile()
	p[4].Dewpoint = p[4].Temperature + 2
	return p
}
