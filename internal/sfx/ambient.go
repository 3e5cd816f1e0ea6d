package sfx

import "math"

// Ambient is an endless, quiet pad-and-pulse loop. It is not safe for
// concurrent use; each audio backend owns one.
type Ambient struct {
	t        float64
	seed     uint64
	measure  int
	chordIdx int
}

var ambientChords = [][]float64{
	{220.0, 261.6, 329.6, 392.0}, // Am7
	{174.6, 220.0, 261.6, 349.2}, // Fmaj7
	{196.0, 246.9, 293.7, 392.0}, // G
	{164.8, 207.7, 246.9, 329.6}, // E
}

const ambientTempo = 1.6 // beats per second

func NewAmbient(seed uint64) *Ambient {
	return &Ambient{seed: seed | 1}
}

// Fill writes the next len(dst) samples.
func (a *Ambient) Fill(dst []float64) {
	for i := range dst {
		a.t += 1.0 / SampleRate

		beatLen := 1.0 / ambientTempo
		trig := math.Mod(a.t, beatLen)
		beat := int(a.t * ambientTempo)
		if beat/4 != a.measure {
			a.measure = beat / 4
			a.chordIdx = (a.chordIdx + 1) % len(ambientChords)
		}
		chord := ambientChords[a.chordIdx]

		s := pad(a.t, chord) * 0.7
		if beat%2 == 0 {
			s += kick(trig) * 0.35
		}
		s += hihat(math.Mod(a.t+beatLen/2, beatLen), &a.seed) * 0.5
		dst[i] = softSat(s * (1.0 - 0.12*math.Exp(-trig*20.0)))
	}
}

// pad is a detuned FM chord.
func pad(t float64, chord []float64) float64 {
	s := 0.0
	detunes := [3]float64{-0.003, 0.0, 0.004}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.6) * 0.045
		}
	}
	return softSat(s)
}

func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

func hihat(trig float64, seed *uint64) float64 {
	if trig > 0.06 {
		return 0
	}
	n := lcg(seed)
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	return softSat((n*0.8 + metal*0.2) * math.Exp(-trig*42.0) * 0.07)
}
