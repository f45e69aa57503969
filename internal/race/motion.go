package race

import "math"

// Vehicle is the car's motion state on the ground plane.
// Heading 0 faces +Z; positive steering turns towards +X while moving forward.
type Vehicle struct {
	Speed        float64
	Acceleration float64
	Steering     float64
	Heading      float64

	X, Y, Z float64
}

// NewVehicle returns a car parked at the origin.
func NewVehicle() Vehicle {
	return Vehicle{Y: RideHeight}
}

// Reset puts the car back at the origin facing +Z with all motion zeroed.
func (v *Vehicle) Reset() {
	*v = NewVehicle()
}

// Advance integrates one step of arcade motion. It never fails; out of range
// values are clamped silently.
func Advance(v Vehicle, c Controls, dt float64) Vehicle {
	switch {
	case c.Forward:
		v.Acceleration = ForwardAccel
	case c.Reverse:
		v.Acceleration = ReverseAccel
	default:
		// Applied every frame regardless of sign, so the speed can flip sign
		// around zero for large dt.
		v.Acceleration = -v.Speed * DragFactor
	}

	v.Steering = 0
	if c.Left {
		v.Steering = -SteerRate
	}
	if c.Right {
		v.Steering = SteerRate
	}

	v.Speed += v.Acceleration * dt
	v.Speed = clampF(v.Speed, -MaxReverseSpeed, MaxSpeed)

	if math.Abs(v.Speed) > TurnDeadZone {
		v.Heading += v.Steering * (v.Speed / MaxSpeed) * dt * TurnGain
	}

	v.X += math.Sin(v.Heading) * v.Speed * dt
	v.Z += math.Cos(v.Heading) * v.Speed * dt

	v.X = clampF(v.X, -RoadLimitX, RoadLimitX)
	return v
}

// RPM maps the current speed onto the tachometer range.
func (v Vehicle) RPM() float64 {
	return math.Abs(v.Speed) / MaxSpeed * RedlineRPM
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
