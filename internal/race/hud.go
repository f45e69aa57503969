package race

import (
	"fmt"
	"math"
	"time"
)

// HUD is the text shown over the scene.
type HUD struct {
	Speed string
	RPM   string
	Timer string
	Lap   string
}

func NewHUD(v Vehicle, r *Race, now time.Time) HUD {
	return HUD{
		Speed: SpeedText(v.Speed),
		RPM:   RPMText(v.Speed),
		Timer: TimerText(r.Elapsed(now)),
		Lap:   LapText(r.CurrentLap, r.TotalLaps),
	}
}

func SpeedText(speed float64) string {
	return fmt.Sprintf("%d MPH", int(math.Round(math.Abs(speed)*SpeedDisplayScale)))
}

func RPMText(speed float64) string {
	return fmt.Sprintf("RPM: %d", int(math.Round(math.Abs(speed)/MaxSpeed*RedlineRPM)))
}

func TimerText(elapsed time.Duration) string {
	return fmt.Sprintf("Time: %.1fs", elapsed.Seconds())
}

func LapText(current, total int) string {
	return fmt.Sprintf("Lap: %d/%d", current, total)
}

// FinalStats returns the two game-over lines.
func FinalStats(res Result) (timeLine, speedLine string) {
	timeLine = fmt.Sprintf("Final Time: %.2fs", res.Seconds())
	speedLine = fmt.Sprintf("Average Speed: %d MPH", int(math.Round(res.AverageSpeed)))
	return
}
