package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples, rate int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(rate)

	for i := range buf {
		switch waveType {
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
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// tone renders a beep sine generator into a buffer
func tone(freq float64, samples, rate int) floatBuffer {
	sine, err := generators.SineTone(beep.SampleRate(rate), freq)
	if err != nil {
		return oscillator(waveSine, freq, samples, rate)
	}
	frames := make([][2]float64, samples)
	n, _ := beep.Take(samples, sine).Stream(frames)
	buf := make(floatBuffer, samples)
	for i := range n {
		buf[i] = frames[i][0]
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration, rate int) {
	total := len(buf)
	attackSamples := durationToSamples(attack, rate)
	releaseSamples := durationToSamples(release, rate)

	releaseStart := max(total-releaseSamples, attackSamples)
	for i := range buf {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

func concatFloatBuffers(parts ...floatBuffer) floatBuffer {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make(floatBuffer, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func durationToSamples(d time.Duration, rate int) int {
	return int(d.Seconds() * float64(rate))
}

// --- Cue generators (unity gain) ---

func generateHit(rate int) floatBuffer {
	buf := oscillator(waveSquare, 220, durationToSamples(parameter.CueDuration, rate), rate)
	applyEnvelope(buf, 2*time.Millisecond, 40*time.Millisecond, rate)
	return buf
}

func generateDeath(rate int) floatBuffer {
	n := durationToSamples(parameter.CueDuration, rate)
	hi := oscillator(waveSaw, 330, n, rate)
	lo := oscillator(waveSaw, 165, 2*n, rate)
	applyEnvelope(hi, 2*time.Millisecond, 10*time.Millisecond, rate)
	applyEnvelope(lo, 2*time.Millisecond, 100*time.Millisecond, rate)
	return concatFloatBuffers(hi, lo)
}

func generateStep(rate int) floatBuffer {
	buf := oscillator(waveNoise, 0, durationToSamples(parameter.CueDuration/2, rate), rate)
	applyEnvelope(buf, time.Millisecond, 30*time.Millisecond, rate)
	return buf
}

// generateStairs is a rising A major arpeggio
func generateStairs(rate int) floatBuffer {
	n := durationToSamples(parameter.CueDuration, rate)
	var notes []floatBuffer
	for _, f := range []float64{440, 554.37, 659.25} {
		b := tone(f, n, rate)
		applyEnvelope(b, 5*time.Millisecond, 30*time.Millisecond, rate)
		notes = append(notes, b)
	}
	return concatFloatBuffers(notes...)
}

// generateSound dispatches to the cue generator
func generateSound(st core.SoundType, rate int) floatBuffer {
	switch st {
	case core.SoundHit:
		return generateHit(rate)
	case core.SoundDeath:
		return generateDeath(rate)
	case core.SoundStep:
		return generateStep(rate)
	case core.SoundStairs:
		return generateStairs(rate)
	default:
		return nil
	}
}
