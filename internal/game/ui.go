package game

import (
	"racer/internal/race"
	"racer/internal/scene"
)

var (
	white  = scene.RGB{R: 255, G: 255, B: 255}
	yellow = scene.RGB{R: 255, G: 220, B: 90}
	red    = scene.RGB{R: 255, G: 80, B: 80}
	black  = scene.RGB{}
)

// RenderHUD draws the dashboard and the start / game-over screens.
func RenderHUD(r *Renderer, s *race.Session, fbW, fbH int) {
	hud := s.HUD()
	s1 := float32(2.0)
	lineH := int(float32(FontCellH)*s1) + 6

	// Top-left: speed, RPM, time, lap.
	r.DrawRect(8, 8, TextWidth("Time: 000.0s", s1)+16, lineH*4+12, black, 0.45)
	y := 14
	for _, line := range []string{hud.Speed, hud.RPM, hud.Timer, hud.Lap} {
		r.DrawString(line, 16, y, s1, white)
		y += lineH
	}

	switch s.Race.Phase {
	case race.PhaseNotStarted:
		r.DrawRect(0, 0, fbW, fbH, black, 0.55)
		title := "LAP RACER"
		titleScale := float32(6.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-120, titleScale, red)

		msg := "Press SPACE to Start"
		r.DrawString(msg, fbW/2-TextWidth(msg, s1)/2, fbH/2, s1, white)

		hint := "Arrows / WASD to drive   R to reset the car"
		hs := float32(1.5)
		r.DrawString(hint, fbW/2-TextWidth(hint, hs)/2, fbH/2+50, hs, yellow)

	case race.PhaseFinished:
		r.DrawRect(0, 0, fbW, fbH, black, 0.55)
		title := "RACE COMPLETE"
		titleScale := float32(4.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-120, titleScale, yellow)

		timeLine, speedLine := race.FinalStats(s.Race.Result)
		r.DrawString(timeLine, fbW/2-TextWidth(timeLine, s1)/2, fbH/2-20, s1, white)
		r.DrawString(speedLine, fbW/2-TextWidth(speedLine, s1)/2, fbH/2-20+lineH, s1, white)

		msg := "Press SPACE to race again"
		r.DrawString(msg, fbW/2-TextWidth(msg, s1)/2, fbH/2+80, s1, white)
	}

	r.FlushText(fbW, fbH)
}
