package game

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"racer/internal/config"
	"racer/internal/race"
	"racer/internal/scene"
)

// Run opens the window and drives the game until it is closed.
func Run(cfg *config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	slog.Debug("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.Mute {
		slog.Info("audio muted")
	} else if err := InitAudio(); err != nil {
		slog.Warn("audio init failed, continuing without sound", "error", err)
	}
	defer CloseAudio()

	gl.Disable(gl.CULL_FACE)
	gl.DepthFunc(gl.LESS)

	world := scene.Build(cfg.Seed)
	static := world.Static()
	slog.Info("track built", "seed", cfg.Seed, "objects", len(static)+len(world.Car))

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.Upload(static)
	rend.Upload(world.Car)
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	session := race.NewSession(time.Now)
	session.Events.SubscribeAll(logRaceEvent)
	session.Events.SubscribeAll(HandleRaceEvent)

	input := NewInput()
	input.OnPress = func(name string) {
		switch name {
		case race.KeyReset:
			session.ResetCar()
		case KeyNameSpace, KeyNameEnter:
			switch session.Race.Phase {
			case race.PhaseNotStarted:
				session.Start()
			case race.PhaseFinished:
				session.Restart()
			}
		case KeyNameEscape:
			window.SetShouldClose(true)
		}
	}
	input.Attach(window)

	for !window.ShouldClose() {
		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised: no frames, so the simulation pauses too.
			SetEngine(false, 0)
			glfw.WaitEvents()
			continue
		}

		// Fixed step: one nominal frame per refresh, no wall-clock delta.
		session.Step(input.Keys, race.FrameDelta)
		SetEngine(session.Running(), session.Car.RPM())

		car := session.Car
		carM := scene.CarTransform(car.X, car.Y, car.Z, car.Heading).Matrix()

		rend.BeginFrame(session.Camera, fbW, fbH)
		rend.DrawObjects(static, mgl32.Ident4())
		rend.DrawObjects(world.Car, carM)
		rend.EndScene()

		RenderHUD(rend, session, fbW, fbH)

		window.SwapBuffers()
	}
	return nil
}

func logRaceEvent(e race.Event) {
	attrs := []any{"race_id", e.RaceID, "lap", e.Lap}
	if e.Type == race.EventRaceFinished {
		attrs = append(attrs,
			"elapsed", e.Result.Elapsed.Round(10*time.Millisecond),
			"avg_speed", e.Result.AverageSpeed,
		)
	}
	level := slog.LevelInfo
	if e.Type == race.EventCarReset {
		level = slog.LevelDebug
	}
	slog.Log(context.Background(), level, e.Type.String(), attrs...)
}
