package race

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func runningRace(lap int) *Race {
	r := NewRace()
	r.Start(t0)
	r.CurrentLap = lap
	return r
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "not_started", PhaseNotStarted.String())
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "finished", PhaseFinished.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

func TestRace_Start(t *testing.T) {
	r := NewRace()
	require.Equal(t, PhaseNotStarted, r.Phase)
	require.Equal(t, 1, r.CurrentLap)
	require.Equal(t, TotalLaps, r.TotalLaps)

	assert.True(t, r.Start(t0))
	assert.Equal(t, PhaseRunning, r.Phase)
	assert.Equal(t, t0, r.StartedAt)
	assert.NotEmpty(t, r.ID)

	id := r.ID
	assert.False(t, r.Start(t0.Add(time.Second)))
	assert.Equal(t, t0, r.StartedAt)
	assert.Equal(t, id, r.ID)
}

func TestRace_CheckLap(t *testing.T) {
	tests := []struct {
		name      string
		lap       int
		z         float64
		want      LapOutcome
		wantLap   int
		wantZ     float64
		wantPhase Phase
	}{
		{"mid track", 1, 150, LapNone, 1, 150, PhaseRunning},
		{"exactly on boundary", 1, LapEndZ, LapNone, 1, LapEndZ, PhaseRunning},
		{"rollover from lap 1", 1, 201, LapCompleted, 2, LapStartZ, PhaseRunning},
		{"rollover from lap 2", 2, 230, LapCompleted, 3, LapStartZ, PhaseRunning},
		{"final lap", 3, 201, RaceCompleted, 3, 201, PhaseFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runningRace(tt.lap)
			v := Vehicle{X: 3.5, Z: tt.z, Heading: 0.2, Speed: 80}

			got := r.CheckLap(&v, t0.Add(time.Minute))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLap, r.CurrentLap)
			assert.Equal(t, tt.wantZ, v.Z)
			assert.Equal(t, tt.wantPhase, r.Phase)
			assert.Equal(t, 3.5, v.X)
			assert.Equal(t, 0.2, v.Heading)
			assert.Equal(t, 80.0, v.Speed)
		})
	}
}

func TestRace_Completion(t *testing.T) {
	r := runningRace(3)
	v := Vehicle{Z: 201}

	r.CheckLap(&v, t0.Add(60*time.Second))

	require.Equal(t, PhaseFinished, r.Phase)
	assert.Equal(t, 60*time.Second, r.Result.Elapsed)
	assert.InDelta(t, 1200.0/60.0, r.Result.AverageSpeed, 1e-9)
}

func TestRace_CheckLapIgnoredWhenNotRunning(t *testing.T) {
	r := NewRace()
	v := Vehicle{Z: 500}

	assert.Equal(t, LapNone, r.CheckLap(&v, t0))
	assert.Equal(t, 500.0, v.Z)
	assert.Equal(t, 1, r.CurrentLap)
}

func TestRace_Reset(t *testing.T) {
	t.Run("only from finished", func(t *testing.T) {
		r := NewRace()
		assert.False(t, r.Reset())
		r.Start(t0)
		assert.False(t, r.Reset())
		assert.Equal(t, PhaseRunning, r.Phase)
	})

	t.Run("clears laps and result", func(t *testing.T) {
		r := runningRace(3)
		v := Vehicle{Z: 201}
		r.CheckLap(&v, t0.Add(time.Minute))

		require.True(t, r.Reset())
		assert.Equal(t, PhaseNotStarted, r.Phase)
		assert.Equal(t, 1, r.CurrentLap)
		assert.Equal(t, Result{}, r.Result)
		assert.True(t, r.StartedAt.IsZero())
	})
}

func TestRace_Elapsed(t *testing.T) {
	r := NewRace()
	assert.Zero(t, r.Elapsed(t0))

	r.Start(t0)
	assert.Equal(t, 5*time.Second, r.Elapsed(t0.Add(5*time.Second)))

	v := Vehicle{Z: 300}
	r.CurrentLap = r.TotalLaps
	r.CheckLap(&v, t0.Add(42*time.Second))
	assert.Equal(t, 42*time.Second, r.Elapsed(t0.Add(time.Hour)))
}

func TestAverageSpeed(t *testing.T) {
	assert.InDelta(t, 10.0, AverageSpeed(3, 120*time.Second), 1e-9)
	assert.InDelta(t, 400.0, AverageSpeed(1, time.Second), 1e-9)
	assert.Zero(t, AverageSpeed(3, 0))
	assert.Zero(t, AverageSpeed(3, -time.Second))
}
