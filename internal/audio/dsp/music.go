package dsp

import "math"

// Music streams an endless lofi loop. All state lives in the reader so
// pausing the player and resuming later continues where it left off.
type Music struct {
	t        float64
	seed     uint64
	measure  int
	chordIdx int
	lp       float64 // lowpass state for the whole mix
	crackle  float64
}

const lofiTempo = 78.0 / 60.0 // beats per second

// Cmaj9 Am9 Dm9 G13 voicings.
var lofiChords = [][]float64{
	{130.8, 164.8, 246.9, 293.7},
	{110.0, 130.8, 196.0, 246.9},
	{146.8, 174.6, 261.6, 329.6},
	{98.0, 123.5, 174.6, 329.6},
}

func NewMusic(seed uint64) *Music {
	return &Music{seed: seed | 1}
}

func (m *Music) Read(p []byte) (int, error) {
	samples := len(p) / FrameBytes
	for i := 0; i < samples; i++ {
		left, right := m.next()
		putStereoF32LR(p, i, left, right)
	}
	return samples * FrameBytes, nil
}

// next renders one stereo frame.
func (m *Music) next() (float64, float64) {
	m.t += 1.0 / SampleRate

	beatLen := 1.0 / lofiTempo
	trig := math.Mod(m.t, beatLen)
	beatPos := trig / beatLen
	beat := int(m.t * lofiTempo)

	if beat/4 != m.measure {
		m.measure = beat / 4
		m.chordIdx = (m.chordIdx + 1) % len(lofiChords)
	}
	chord := lofiChords[m.chordIdx]

	// Warm pad with slow wobble, like tape.
	wow := 1 + 0.002*math.Sin(2*math.Pi*0.5*m.t)
	s := 0.0
	for _, f := range chord {
		s += fm(m.t, f*wow, 1.0, 0.35) * 0.07
	}

	// Bass on 1 and the "and" of 2.
	if beat%4 == 0 || (beat%4 == 1 && beatPos > 0.5) {
		be := adsr(beatPos, 0.03, 0.5, 0.4, 0.3)
		s += math.Sin(2*math.Pi*chord[0]/2*m.t) * be * 0.32
	}

	// Dusty kick and rimshot.
	if beat%2 == 0 {
		s += kick(trig) * 0.5
	} else if trig < 0.03 {
		s += math.Sin(2*math.Pi*1100*trig) * math.Exp(-trig*180) * 0.10
	}

	// Sparse keys on the off-beats.
	if beatPos > 0.5 {
		idx := (beat + m.measure) % len(chord)
		env := adsr((beatPos-0.5)*2, 0.02, 0.6, 0.15, 0.3)
		s += fm(m.t, chord[idx]*2, 2.0, 1.1*env) * env * 0.12
	}

	// Vinyl crackle.
	n := lcg(&m.seed)
	if n > 0.9985 {
		m.crackle = 0.25
	}
	m.crackle *= 0.93
	s += m.crackle*lcg(&m.seed) + n*0.004

	// One-pole lowpass for the muffled lofi colour.
	m.lp += (s - m.lp) * 0.18
	out := softSat(m.lp)

	pan := 0.06 * math.Sin(2*math.Pi*0.07*m.t)
	return out * (1 - pan), out * (1 + pan)
}

// kick returns a kick drum sample given time-since-trigger (trig) in seconds.
// Uses a pitch-swept sine with a transient click.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 150 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*16.0) * 0.80
	click := math.Sin(2*math.Pi*1800*trig) * math.Exp(-trig*250.0) * 0.15
	return softSat(body + click)
}
