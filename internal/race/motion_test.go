package race

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allControls() []Controls {
	var out []Controls
	for i := 0; i < 16; i++ {
		out = append(out, Controls{
			Forward: i&1 != 0,
			Reverse: i&2 != 0,
			Left:    i&4 != 0,
			Right:   i&8 != 0,
		})
	}
	return out
}

func TestAdvance_SpeedStaysInBounds(t *testing.T) {
	starts := []float64{-MaxReverseSpeed, -30, -0.5, 0, 0.5, 10, 119.99, MaxSpeed}
	dts := []float64{0, FrameDelta, 0.5, 1, 10, 1000}

	for _, c := range allControls() {
		for _, speed := range starts {
			for _, dt := range dts {
				v := Advance(Vehicle{Speed: speed}, c, dt)
				assert.LessOrEqual(t, v.Speed, MaxSpeed)
				assert.GreaterOrEqual(t, v.Speed, -MaxReverseSpeed)
				assert.LessOrEqual(t, math.Abs(v.Speed), MaxSpeed)
			}
		}
	}
}

func TestAdvance_XStaysOnRoad(t *testing.T) {
	tests := []struct {
		name    string
		start   Vehicle
		dt      float64
		wantX   float64
		exactly bool
	}{
		{"slides along right edge", Vehicle{X: 7.9, Speed: 100, Heading: math.Pi / 2}, 1, RoadLimitX, true},
		{"slides along left edge", Vehicle{X: -7.9, Speed: 100, Heading: -math.Pi / 2}, 1, -RoadLimitX, true},
		{"reversing into edge", Vehicle{X: 0, Speed: -60, Heading: math.Pi / 2}, 1, -RoadLimitX, true},
		{"already outside", Vehicle{X: 50}, FrameDelta, RoadLimitX, true},
		{"straight ahead", Vehicle{X: 3, Speed: 40}, FrameDelta, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Advance(tt.start, Controls{}, tt.dt)
			assert.GreaterOrEqual(t, v.X, -RoadLimitX)
			assert.LessOrEqual(t, v.X, RoadLimitX)
			if tt.exactly {
				assert.Equal(t, tt.wantX, v.X)
			} else {
				assert.InDelta(t, tt.wantX, v.X, 1e-9)
			}
		})
	}
}

func TestAdvance_ClampKeepsVelocity(t *testing.T) {
	v := Advance(Vehicle{X: 7.9, Speed: 100, Heading: math.Pi / 2}, Controls{Forward: true}, 1)

	assert.Equal(t, RoadLimitX, v.X)
	assert.InDelta(t, 100.1, v.Speed, 1e-9)
}

func TestAdvance_AccelerationPriority(t *testing.T) {
	tests := []struct {
		name      string
		controls  Controls
		speed     float64
		wantAccel float64
	}{
		{"forward", Controls{Forward: true}, 20, ForwardAccel},
		{"reverse", Controls{Reverse: true}, 20, ReverseAccel},
		{"forward wins over reverse", Controls{Forward: true, Reverse: true}, 20, ForwardAccel},
		{"coasting forward", Controls{}, 20, -1},
		{"coasting backward", Controls{}, -20, 1},
		{"standing still", Controls{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Advance(Vehicle{Speed: tt.speed}, tt.controls, FrameDelta)
			assert.InDelta(t, tt.wantAccel, v.Acceleration, 1e-12)
		})
	}
}

func TestAdvance_NaturalDecay(t *testing.T) {
	v := Advance(Vehicle{Speed: 10}, Controls{}, 1)

	assert.InDelta(t, -0.5, v.Acceleration, 1e-12)
	assert.InDelta(t, 9.5, v.Speed, 1e-12)
}

func TestAdvance_DecayOvershootsZeroWithLargeStep(t *testing.T) {
	// -speed*0.05*dt exceeds the speed itself once dt > 20.
	v := Advance(Vehicle{Speed: 0.5}, Controls{}, 40)

	assert.InDelta(t, -0.5, v.Speed, 1e-12)
}

func TestAdvance_Steering(t *testing.T) {
	tests := []struct {
		name      string
		controls  Controls
		wantSteer float64
	}{
		{"none", Controls{}, 0},
		{"left", Controls{Left: true}, -SteerRate},
		{"right", Controls{Right: true}, SteerRate},
		{"right overrides left", Controls{Left: true, Right: true}, SteerRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Advance(Vehicle{Speed: 60, Steering: 0.5}, tt.controls, FrameDelta)
			assert.Equal(t, tt.wantSteer, v.Steering)
		})
	}
}

func TestAdvance_DeadZone(t *testing.T) {
	v := Advance(Vehicle{Speed: 0.5, Heading: 0.25}, Controls{Right: true}, FrameDelta)

	assert.NotZero(t, v.Steering)
	assert.Equal(t, 0.25, v.Heading)
}

func TestAdvance_TurnRateScalesWithSpeed(t *testing.T) {
	slow := Advance(Vehicle{Speed: 12}, Controls{Right: true, Forward: true}, FrameDelta)
	fast := Advance(Vehicle{Speed: 110}, Controls{Right: true, Forward: true}, FrameDelta)

	assert.Greater(t, slow.Heading, 0.0)
	assert.Greater(t, fast.Heading, slow.Heading)

	want := SteerRate * (fast.Speed / MaxSpeed) * FrameDelta * TurnGain
	assert.InDelta(t, want, fast.Heading, 1e-12)
}

func TestAdvance_ReversingInvertsTurn(t *testing.T) {
	v := Advance(Vehicle{Speed: -30}, Controls{Right: true, Reverse: true}, FrameDelta)

	assert.Less(t, v.Heading, 0.0)
}

func TestAdvance_Position(t *testing.T) {
	t.Run("heading zero drives along +Z", func(t *testing.T) {
		v := Advance(Vehicle{Speed: 10}, Controls{Forward: true}, 1)
		assert.InDelta(t, 10.1, v.Z, 1e-9)
		assert.InDelta(t, 0, v.X, 1e-9)
	})

	t.Run("heading quarter turn drives along +X", func(t *testing.T) {
		v := Advance(Vehicle{Speed: 4, Heading: math.Pi / 2}, Controls{Forward: true}, 1)
		assert.InDelta(t, 4.1, v.X, 1e-9)
		assert.InDelta(t, 0, v.Z, 1e-9)
	})

	t.Run("y is untouched", func(t *testing.T) {
		v := Advance(NewVehicle(), Controls{Forward: true}, 1)
		assert.Equal(t, RideHeight, v.Y)
	})
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	start := Vehicle{Speed: 20, X: 1, Z: 2}
	_ = Advance(start, Controls{Forward: true, Left: true}, 1)

	assert.Equal(t, Vehicle{Speed: 20, X: 1, Z: 2}, start)
}

func TestVehicleReset_Idempotent(t *testing.T) {
	v := Vehicle{Speed: 50, Acceleration: 0.1, Steering: 0.03, Heading: 1.2, X: 4, Y: 3, Z: 150}

	v.Reset()
	once := v
	v.Reset()

	assert.Equal(t, once, v)
	assert.Equal(t, NewVehicle(), v)
}

func TestVehicleRPM(t *testing.T) {
	assert.InDelta(t, RedlineRPM, Vehicle{Speed: MaxSpeed}.RPM(), 1e-9)
	assert.InDelta(t, 4000, Vehicle{Speed: -60}.RPM(), 1e-9)
	assert.Zero(t, Vehicle{}.RPM())
}
