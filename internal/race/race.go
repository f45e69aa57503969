package race

import (
	"time"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Result is the outcome of a completed race.
type Result struct {
	Elapsed      time.Duration
	AverageSpeed float64
}

// Seconds returns the race time in seconds.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// LapOutcome tells the caller what CheckLap did.
type LapOutcome int

const (
	LapNone LapOutcome = iota
	LapCompleted
	RaceCompleted
)

// Race tracks lap progress and timing for one run of the track.
type Race struct {
	ID         string
	Phase      Phase
	StartedAt  time.Time
	CurrentLap int
	TotalLaps  int
	Result     Result
}

func NewRace() *Race {
	return &Race{
		Phase:      PhaseNotStarted,
		CurrentLap: 1,
		TotalLaps:  TotalLaps,
	}
}

// Start begins timing. It only acts from PhaseNotStarted.
func (r *Race) Start(now time.Time) bool {
	if r.Phase != PhaseNotStarted {
		return false
	}
	r.ID = uuid.New().String()
	r.Phase = PhaseRunning
	r.StartedAt = now
	r.Result = Result{}
	return true
}

// Reset returns a finished race to the start line.
func (r *Race) Reset() bool {
	if r.Phase != PhaseFinished {
		return false
	}
	r.Phase = PhaseNotStarted
	r.CurrentLap = 1
	r.StartedAt = time.Time{}
	r.Result = Result{}
	return true
}

// Elapsed returns the running time, or the final time once finished.
func (r *Race) Elapsed(now time.Time) time.Duration {
	switch r.Phase {
	case PhaseRunning:
		return now.Sub(r.StartedAt)
	case PhaseFinished:
		return r.Result.Elapsed
	default:
		return 0
	}
}

// CheckLap evaluates the lap boundary after the car has moved. Crossing it on an
// intermediate lap moves the car back to LapStartZ keeping X and heading; crossing
// it on the last lap finishes the race.
func (r *Race) CheckLap(v *Vehicle, now time.Time) LapOutcome {
	if r.Phase != PhaseRunning || v.Z <= LapEndZ {
		return LapNone
	}
	if r.CurrentLap < r.TotalLaps {
		r.CurrentLap++
		v.Z = LapStartZ
		return LapCompleted
	}
	r.finish(now)
	return RaceCompleted
}

func (r *Race) finish(now time.Time) {
	r.Phase = PhaseFinished
	elapsed := now.Sub(r.StartedAt)
	r.Result = Result{
		Elapsed:      elapsed,
		AverageSpeed: AverageSpeed(r.TotalLaps, elapsed),
	}
}

// AverageSpeed is the track distance covered per second over the whole race.
// A zero or negative duration yields 0.
func AverageSpeed(laps int, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(laps) * LapDistance / secs
}
