package game

import (
	"io"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"racer/internal/race"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundStart SoundKind = iota
	SoundLap
	SoundFinish
	SoundReset
)

// AudioSystem owns the oto context and the looping engine voice.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	engine oto.Player
	voice  *engineReader
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.5
var engineVolume float64 = 0.22

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready, voice: &engineReader{}}
	return nil
}

// CloseAudio stops the engine voice.
func CloseAudio() {
	if globalAudio == nil || globalAudio.engine == nil {
		return
	}
	if err := globalAudio.engine.Close(); err != nil {
		slog.Debug("close engine player", "error", err)
	}
	globalAudio.engine = nil
}

func audioReady() bool {
	if globalAudio == nil {
		return false
	}
	select {
	case <-globalAudio.ready:
		return true
	default:
		return false
	}
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	if !audioReady() {
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// HandleRaceEvent maps race events to sound cues.
func HandleRaceEvent(e race.Event) {
	switch e.Type {
	case race.EventRaceStarted:
		PlaySound(SoundStart)
	case race.EventLapCompleted:
		PlaySound(SoundLap)
	case race.EventRaceFinished:
		PlaySound(SoundFinish)
	case race.EventCarReset:
		PlaySound(SoundReset)
	}
}

// SetEngine updates the engine voice. The voice is started lazily once the
// audio device is ready and fades out while the race is not running.
func SetEngine(running bool, rpm float64) {
	if !audioReady() {
		return
	}
	a := globalAudio
	if a.engine == nil {
		a.engine = a.ctx.NewPlayer(a.voice)
		a.engine.SetVolume(engineVolume)
		a.engine.Play()
	}
	gain := 0.0
	if running {
		gain = 1.0
	}
	a.voice.set(rpm, gain)
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundStart:
		return genStart()
	case SoundLap:
		return genLap()
	case SoundFinish:
		return genFinish()
	case SoundReset:
		return genReset()
	}
	return nil
}

// genStart: three short countdown blips, the last one higher.
func genStart() []byte {
	const blip = 0.11
	const gap = 0.16
	freqs := []float64{660, 660, 990}
	n := int((gap*float64(len(freqs)-1) + blip + 0.05) * SampleRate)
	mix := make([]float64, n)
	for k, freq := range freqs {
		start := int(float64(k) * gap * SampleRate)
		dur := int(blip * SampleRate)
		for j := 0; j < dur && start+j < n; j++ {
			t := float64(j) / SampleRate
			p := float64(j) / float64(dur)
			env := adsr(p, 0.02, 0.3, 0.6, 0.3)
			mix[start+j] += fm(t, freq, 1.0, 0.8) * env * 0.4
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLap: quick ascending bell pair.
func genLap() []byte {
	notes := []float64{784, 1174.66}
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.3*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 3.5, 4.0*env) * env * 0.3
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genFinish: major arpeggio resolving on a held chord.
func genFinish() []byte {
	dur := 1.4
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{523.25, 0.00}, // C5
		{659.25, 0.12}, // E5
		{783.99, 0.24}, // G5
		{1046.5, 0.36}, // C6
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.3, 0.45, 0.4)
			s := fm(t, note.freq, 2.0, 1.5*env) * env * 0.22
			s += math.Sin(2*math.Pi*note.freq*0.5*t) * env * 0.06
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genReset: falling filtered noise sweep.
func genReset() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(time.Now().UnixNano())
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.3, 0.4)
		cut := 0.35 * (1 - p*0.85)
		lp += (lcg(&seed) - lp) * cut
		s := lp*0.5 + math.Sin(2*math.Pi*(220-140*p)*t)*0.2
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// ---- Engine voice ---------------------------------------------------------

const (
	engineIdleHz    = 38.0
	engineRedlineHz = 210.0
	engineSlew      = 0.0008 // per-sample smoothing towards the target
)

// engineReader is an endless stream whose pitch follows the tachometer. The
// frame loop publishes targets through atomics; oto reads on its own goroutine.
type engineReader struct {
	rpmBits  atomic.Uint64
	gainBits atomic.Uint64

	freq  float64
	gain  float64
	phase float64
	seed  uint64
}

func (e *engineReader) set(rpm, gain float64) {
	e.rpmBits.Store(math.Float64bits(rpm))
	e.gainBits.Store(math.Float64bits(gain))
}

func (e *engineReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	if e.seed == 0 {
		e.seed = 0x9E3779B97F4A7C15
	}
	rpm := math.Float64frombits(e.rpmBits.Load())
	targetGain := math.Float64frombits(e.gainBits.Load())
	load := clampF(rpm/race.RedlineRPM, 0, 1)
	targetFreq := engineIdleHz + (engineRedlineHz-engineIdleHz)*load

	for i := 0; i < samples; i++ {
		e.freq += (targetFreq - e.freq) * engineSlew
		e.gain += (targetGain - e.gain) * engineSlew
		e.phase += e.freq / SampleRate
		if e.phase >= 1 {
			e.phase -= 1
		}
		// Two detuned pulses plus a little combustion noise.
		ph := e.phase * 2 * math.Pi
		s := math.Sin(ph) + 0.5*math.Sin(2*ph+0.3) + 0.25*math.Sin(3*ph)
		s += lcg(&e.seed) * (0.08 + 0.12*load)
		putStereoF32(p, i, softSat(s*0.35*e.gain))
	}
	return samples * 8, nil
}

var _ io.Reader = (*engineReader)(nil)
