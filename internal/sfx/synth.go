// Package sfx synthesizes the game's sound effects and ambient loop.
// Everything is generated procedurally as mono float samples in [-1, 1];
// front ends wrap them for their own audio backend.
package sfx

import "math"

const SampleRate = 44100

// Kind identifies a one-shot sound effect.
type Kind int

const (
	Eat Kind = iota
	ChaserWins
	SnakeWins
	Restart
)

func (k Kind) String() string {
	switch k {
	case Eat:
		return "eat"
	case ChaserWins:
		return "chaser-wins"
	case SnakeWins:
		return "snake-wins"
	case Restart:
		return "restart"
	}
	return "unknown"
}

// Generate renders a sound effect. Unknown kinds return nil.
func Generate(kind Kind) []float64 {
	switch kind {
	case Eat:
		return genEat()
	case ChaserWins:
		return genChomp()
	case SnakeWins:
		return genFanfare()
	case Restart:
		return genSelect()
	}
	return nil
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
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
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func samples(seconds float64) int { return int(seconds * SampleRate) }

// genEat: snappy FM pop with a rising pitch.
func genEat() []float64 {
	n := samples(0.09)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		out[i] = softSat(s)
	}
	return out
}

// genChomp: three fast bites over a falling minor line.
func genChomp() []float64 {
	n := samples(0.8)
	out := make([]float64, n)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00},
		{261.63, 0.14},
		{220.00, 0.28},
	}
	seed := uint64(0xC0FFEE)
	for _, note := range notes {
		start := samples(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			out[i] += fm(t, freq, 2.0, 2.0*env)*env*0.3 + math.Sin(2*math.Pi*freq*0.5*t)*env*0.1
		}
	}
	// Bite transients: gated noise bursts at 9 Hz for the first 0.33s.
	for i := 0; i < samples(0.33); i++ {
		t := float64(i) / SampleRate
		gate := math.Max(0, math.Sin(2*math.Pi*9*t))
		out[i] += lcg(&seed) * gate * gate * 0.18
	}
	for i, s := range out {
		out[i] = softSat(s)
	}
	return out
}

// genFanfare: ascending FM arpeggio.
func genFanfare() []float64 {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	step := samples(0.09)
	total := len(notes)*step + samples(0.25)
	out := make([]float64, total)
	for fi, freq := range notes {
		start := fi * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			out[start+j] += s
		}
	}
	for i, s := range out {
		out[i] = softSat(s)
	}
	return out
}

// genSelect: crisp click and a short falling tone.
func genSelect() []float64 {
	n := SampleRate * 65 / 1000
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		out[i] = softSat(fm(t, freq, 1.0, 0.6) * env * 0.38)
	}
	return out
}
