package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

const sampleRate = beep.SampleRate(44100)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// noiseSeed keeps generated cues identical between runs
const noiseSeed = 0x5eed

// sweep generates a waveform gliding linearly from f0 to f1
func sweep(wave int, f0, f1 float64, samples int, rng *vmath.FastRand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := 0; i < samples; i++ {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		freq := vmath.Lerp(f0, f1, float64(i)/float64(samples))
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)
	}
	return buf
}

// sine pulls a fixed tone from the beep generator
func sine(freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return buf
	}
	chunk := make([][2]float64, 512)
	for pos := 0; pos < samples; {
		n := len(chunk)
		if samples-pos < n {
			n = samples - pos
		}
		got, ok := tone.Stream(chunk[:n])
		for i := 0; i < got; i++ {
			buf[pos+i] = chunk[i][0]
		}
		pos += got
		if !ok || got == 0 {
			break
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := sampleRate.N(attack)
	releaseSamples := sampleRate.N(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// applyDecay fades exponentially; rate is the e-folding count per second
func applyDecay(buf floatBuffer, rate float64) {
	for i := range buf {
		buf[i] *= math.Exp(-rate * float64(i) / float64(sampleRate))
	}
}

// lowPass is a one-pole filter; smaller alpha is darker
func lowPass(buf floatBuffer, alpha float64) {
	prev := 0.0
	for i := range buf {
		prev += alpha * (buf[i] - prev)
		buf[i] = prev
	}
}

// mix adds b into a scaled, extending a if needed
func mix(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func concat(a, b floatBuffer) floatBuffer {
	out := make(floatBuffer, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// normalize scales the buffer so its peak sits at 1
func normalize(buf floatBuffer) floatBuffer {
	peak := 0.0
	for _, v := range buf {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		return buf
	}
	for i := range buf {
		buf[i] /= peak
	}
	return buf
}

func samplesOf(d time.Duration) int { return sampleRate.N(d) }

// --- Cue generators (unity gain) ---

func generateGun(rng *vmath.FastRand) floatBuffer {
	n := samplesOf(50 * time.Millisecond)
	body := sweep(waveSquare, 420, 180, n, rng)
	crack := sweep(waveNoise, 0, 0, n, rng)
	body = mix(body, crack, 0.6)
	applyEnvelope(body, time.Millisecond, 40*time.Millisecond)
	return normalize(body)
}

func generateBombDrop(rng *vmath.FastRand) floatBuffer {
	buf := sweep(waveSine, 1300, 520, samplesOf(420*time.Millisecond), rng)
	applyEnvelope(buf, 20*time.Millisecond, 120*time.Millisecond)
	return normalize(buf)
}

func generateExplosion(rng *vmath.FastRand, length time.Duration, rumble float64) floatBuffer {
	n := samplesOf(length)
	noise := sweep(waveNoise, 0, 0, n, rng)
	lowPass(noise, 0.18)
	noise = mix(noise, sine(rumble, n), 0.5)
	applyDecay(noise, 4.0/length.Seconds())
	applyEnvelope(noise, 3*time.Millisecond, 0)
	return normalize(noise)
}

func generateFlak(rng *vmath.FastRand) floatBuffer {
	n := samplesOf(140 * time.Millisecond)
	buf := sweep(waveNoise, 0, 0, n, rng)
	lowPass(buf, 0.35)
	buf = mix(buf, sine(95, n), 0.4)
	applyDecay(buf, 30)
	return normalize(buf)
}

func generateSplash(rng *vmath.FastRand) floatBuffer {
	buf := sweep(waveNoise, 0, 0, samplesOf(320*time.Millisecond), rng)
	lowPass(buf, 0.5)
	applyEnvelope(buf, 40*time.Millisecond, 220*time.Millisecond)
	return normalize(buf)
}

func generateLanding() floatBuffer {
	n := samplesOf(120 * time.Millisecond)
	first := sine(660, n)
	applyEnvelope(first, 5*time.Millisecond, 60*time.Millisecond)
	second := sine(880, n)
	applyEnvelope(second, 5*time.Millisecond, 80*time.Millisecond)
	return normalize(concat(first, second))
}

func generateGameOver(rng *vmath.FastRand) floatBuffer {
	buf := sweep(waveSaw, 440, 110, samplesOf(1200*time.Millisecond), rng)
	lowPass(buf, 0.25)
	applyEnvelope(buf, 10*time.Millisecond, 500*time.Millisecond)
	return normalize(buf)
}

// generateSound dispatches to the cue generator
func generateSound(st core.SoundType) floatBuffer {
	rng := vmath.NewFastRand(noiseSeed + uint64(st))
	switch st {
	case core.SoundGun:
		return generateGun(rng)
	case core.SoundBombDrop:
		return generateBombDrop(rng)
	case core.SoundExplosion:
		return generateExplosion(rng, 450*time.Millisecond, 70)
	case core.SoundExplosionBig:
		return generateExplosion(rng, 1100*time.Millisecond, 42)
	case core.SoundFlak:
		return generateFlak(rng)
	case core.SoundSplash:
		return generateSplash(rng)
	case core.SoundLanding:
		return generateLanding()
	case core.SoundGameOver:
		return generateGameOver(rng)
	default:
		return nil
	}
}

// cueGain balances cues against each other
var cueGain = [core.SoundTypeCount]float64{
	core.SoundGun:          0.18,
	core.SoundBombDrop:     0.22,
	core.SoundExplosion:    0.45,
	core.SoundExplosionBig: 0.6,
	core.SoundFlak:         0.3,
	core.SoundSplash:       0.25,
	core.SoundLanding:      0.3,
	core.SoundGameOver:     0.4,
}

// bufferStreamer plays a floatBuffer once at a fixed gain
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func newBufferStreamer(buf floatBuffer, gain float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain}
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	for i := range samples {
		if b.pos >= len(b.buf) {
			return i, true
		}
		v := b.buf[b.pos] * b.gain
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *bufferStreamer) Err() error { return nil }

// engineDrone is the continuous propeller note; pitch is retuned from the tick
type engineDrone struct {
	freq  float64
	phase float64
	lfo   float64
}

func (e *engineDrone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		saw := 2.0 * (e.phase - 0.5)
		throb := 0.75 + 0.25*math.Sin(2*math.Pi*e.lfo)
		v := 0.6 * saw * throb
		samples[i][0] = v
		samples[i][1] = v

		e.phase += e.freq / float64(sampleRate)
		e.phase -= math.Floor(e.phase)
		e.lfo += 9 / float64(sampleRate)
		e.lfo -= math.Floor(e.lfo)
	}
	return len(samples), true
}

func (e *engineDrone) Err() error { return nil }

// enginePitch maps remaining health to the drone frequency; a damaged engine sags
func enginePitch(healthFraction float64) float64 {
	return 55 + 45*vmath.Clamp(healthFraction, 0, 1)
}
