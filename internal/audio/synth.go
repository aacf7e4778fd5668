package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveform selects the oscillator shape.
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator streams a fixed-length tone, sweeping linearly from freq to
// endFreq over its duration.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	pos, length   int
	wave          waveform
	rate          beep.SampleRate
	rng           *rand.Rand
}

func newOscillator(freq, endFreq float64, d time.Duration, wave waveform, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:    freq,
		endFreq: endFreq,
		length:  rate.N(d),
		wave:    wave,
		rate:    rate,
		rng:     rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case waveSaw:
			v = 2 * (o.phase - 0.5)
		case waveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(o.pos) / float64(o.length)
		f := o.freq + (o.endFreq-o.freq)*progress
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies a linear attack and an exponential tail.
type decay struct {
	s      beep.Streamer
	pos    int
	attack int
	rate   beep.SampleRate
	speed  float64
}

func newDecay(s beep.Streamer, attack time.Duration, speed float64, rate beep.SampleRate) *decay {
	return &decay{s: s, attack: rate.N(attack), rate: rate, speed: speed}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-float64(d.pos) / float64(d.rate) * d.speed)
		if d.pos < d.attack {
			vol *= float64(d.pos) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// gain scales s by a linear factor. Zero or less is silent.
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// synthesize builds the fallback effect for a sound name. Unknown names
// get a short blip.
func synthesize(name string, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch name {
	case "weapon-pistol-fire":
		crack := newDecay(newOscillator(0, 0, 90*ms, waveNoise, rate), 2*ms, 35, rate)
		thump := newDecay(newOscillator(220, 90, 90*ms, waveSquare, rate), 2*ms, 30, rate)
		return gain(beep.Mix(gain(crack, 0.6), gain(thump, 0.4)), 0.5)
	case "player-hurt":
		return gain(newDecay(newOscillator(160, 70, 220*ms, waveSaw, rate), 5*ms, 9, rate), 0.45)
	case "enemy-death":
		noise := newDecay(newOscillator(0, 0, 350*ms, waveNoise, rate), 3*ms, 10, rate)
		rumble := newDecay(newOscillator(90, 40, 350*ms, waveSine, rate), 3*ms, 6, rate)
		return gain(beep.Mix(gain(noise, 0.4), gain(rumble, 0.6)), 0.5)
	case "wave-start":
		first := newDecay(newOscillator(660, 660, 120*ms, waveSquare, rate), 5*ms, 8, rate)
		second := newDecay(newOscillator(990, 990, 200*ms, waveSquare, rate), 5*ms, 6, rate)
		return gain(beep.Seq(first, second), 0.25)
	default:
		return gain(newDecay(newOscillator(440, 440, 60*ms, waveSine, rate), 2*ms, 20, rate), 0.3)
	}
}
