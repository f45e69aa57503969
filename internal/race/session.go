package race

import "time"

// Session ties the car, the race and the event bus together and is what the
// frame loop drives. It is not safe for concurrent use.
type Session struct {
	Car    Vehicle
	Race   *Race
	Camera Camera
	Events *EventBus

	now func() time.Time
}

// NewSession creates a session that reads time from clock. A nil clock uses
// time.Now.
func NewSession(clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	s := &Session{
		Car:    NewVehicle(),
		Race:   NewRace(),
		Events: NewEventBus(),
		now:    clock,
	}
	s.Camera = FollowCamera(s.Car)
	return s
}

// Running reports whether the car is currently being simulated.
func (s *Session) Running() bool {
	return s.Race.Phase == PhaseRunning
}

// Start leaves the start screen.
func (s *Session) Start() bool {
	if !s.Race.Start(s.now()) {
		return false
	}
	s.emit(EventRaceStarted)
	return true
}

// Reset clears a finished race back to the start line: car, motion and lap
// counter.
func (s *Session) Reset() bool {
	if !s.Race.Reset() {
		return false
	}
	s.Car.Reset()
	s.Camera = FollowCamera(s.Car)
	s.emit(EventRaceReset)
	return true
}

// Restart resets a finished race and immediately starts the next one.
func (s *Session) Restart() bool {
	if !s.Reset() {
		return false
	}
	return s.Start()
}

// ResetCar puts the car back at the origin in any phase. The lap counter is
// left alone.
func (s *Session) ResetCar() {
	s.Car.Reset()
	s.emit(EventCarReset)
}

// Step advances the simulation by dt using the keys currently held. Outside
// PhaseRunning it does nothing, including the camera.
func (s *Session) Step(in *Input, dt float64) {
	if !s.Running() {
		return
	}
	s.Car = Advance(s.Car, in.Snapshot(), dt)
	s.Camera = FollowCamera(s.Car)

	switch s.Race.CheckLap(&s.Car, s.now()) {
	case LapCompleted:
		s.emit(EventLapCompleted)
	case RaceCompleted:
		s.emit(EventRaceFinished)
	}
}

// HUD formats the dashboard for the current state.
func (s *Session) HUD() HUD {
	return NewHUD(s.Car, s.Race, s.now())
}

func (s *Session) emit(t EventType) {
	s.Events.Emit(Event{
		Type:   t,
		RaceID: s.Race.ID,
		Lap:    s.Race.CurrentLap,
		Result: s.Race.Result,
	})
}
