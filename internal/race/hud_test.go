package race

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpeedText(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0, "0 MPH"},
		{12.0, "120 MPH"},
		{MaxSpeed, "1200 MPH"},
		{-7.5, "75 MPH"},
		{0.04, "0 MPH"},
		{0.06, "1 MPH"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, SpeedText(tt.speed))
		})
	}
}

func TestRPMText(t *testing.T) {
	assert.Equal(t, "RPM: 0", RPMText(0))
	assert.Equal(t, "RPM: 8000", RPMText(MaxSpeed))
	assert.Equal(t, "RPM: 4000", RPMText(-MaxReverseSpeed))
	assert.Equal(t, "RPM: 667", RPMText(10))
}

func TestTimerText(t *testing.T) {
	assert.Equal(t, "Time: 0.0s", TimerText(0))
	assert.Equal(t, "Time: 61.7s", TimerText(61700*time.Millisecond))
}

func TestLapText(t *testing.T) {
	assert.Equal(t, "Lap: 1/3", LapText(1, 3))
	assert.Equal(t, "Lap: 3/3", LapText(3, TotalLaps))
}

func TestFinalStats(t *testing.T) {
	res := Result{Elapsed: 75 * time.Second, AverageSpeed: AverageSpeed(TotalLaps, 75*time.Second)}

	timeLine, speedLine := FinalStats(res)

	assert.Equal(t, "Final Time: 75.00s", timeLine)
	assert.Equal(t, "Average Speed: 16 MPH", speedLine)
}

func TestNewHUD_FrozenAfterFinish(t *testing.T) {
	r := NewRace()
	r.Start(t0)
	r.CurrentLap = 3
	v := Vehicle{Z: 250, Speed: 100}
	r.CheckLap(&v, t0.Add(90*time.Second))

	hud := NewHUD(v, r, t0.Add(10*time.Minute))

	assert.Equal(t, "Time: 90.0s", hud.Timer)
	assert.Equal(t, "Lap: 3/3", hud.Lap)
	assert.Equal(t, "1000 MPH", hud.Speed)
}

func TestFollowCamera(t *testing.T) {
	cam := FollowCamera(Vehicle{X: -4, Y: RideHeight, Z: 33})

	assert.Equal(t, -4.0, cam.Eye.X())
	assert.Equal(t, CameraHeight, cam.Eye.Y())
	assert.Equal(t, 43.0, cam.Eye.Z())
	assert.Equal(t, -4.0, cam.Target.X())
	assert.Equal(t, 0.0, cam.Target.Y())
	assert.Equal(t, 33.0, cam.Target.Z())
}
