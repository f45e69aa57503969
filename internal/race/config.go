package race

// Speed limits (display units are speed*10 MPH).
const (
	MaxSpeed        = 120.0
	MaxReverseSpeed = MaxSpeed * 0.5
)

// Throttle and steering inputs, applied per unit of frame time.
const (
	ForwardAccel = 0.1
	ReverseAccel = -0.08
	DragFactor   = 0.05 // natural deceleration is -speed*DragFactor
	SteerRate    = 0.03
	TurnGain     = 50.0
	TurnDeadZone = 1.0 // no heading change at |speed| <= TurnDeadZone
)

// Track geometry. The car drives towards +Z; a lap is the span LapStartZ..LapEndZ.
const (
	RoadLimitX  = 8.0
	LapStartZ   = -200.0
	LapEndZ     = 200.0
	LapDistance = 400.0
	TotalLaps   = 3
	RideHeight  = 0.5
)

// Follow camera offsets relative to the car.
const (
	CameraHeight = 5.0
	CameraBehind = 10.0
)

// Dashboard.
const (
	SpeedDisplayScale = 10.0
	RedlineRPM        = 8000.0
)

// FrameDelta is the nominal time step handed to Advance once per frame.
// It is not measured, so simulation speed follows the display refresh rate.
const FrameDelta = 0.016
