package dsp

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(buf []byte) []float32 {
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

func TestChime(t *testing.T) {
	buf := Chime()
	require.NotEmpty(t, buf)
	require.Zero(t, len(buf)%FrameBytes)

	peak := float32(0)
	for _, s := range samples(buf) {
		require.False(t, math.IsNaN(float64(s)))
		require.LessOrEqual(t, s, float32(1))
		require.GreaterOrEqual(t, s, float32(-1))
		if s > peak {
			peak = s
		}
	}
	assert.Greater(t, peak, float32(0.05))
}

func TestSoundReaderPlaysOnce(t *testing.T) {
	r := NewSoundReader([]byte{1, 2, 3, 4, 5})
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)

	n, err := r.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestMusicResumesSeamlessly(t *testing.T) {
	whole := make([]byte, 4096*FrameBytes)
	_, err := NewMusic(9).Read(whole)
	require.NoError(t, err)

	m := NewMusic(9)
	first := make([]byte, 1000*FrameBytes)
	second := make([]byte, 3096*FrameBytes)
	_, err = m.Read(first)
	require.NoError(t, err)
	_, err = m.Read(second)
	require.NoError(t, err)

	assert.Equal(t, whole, append(first, second...))
}

func TestMusicIgnoresPartialFrames(t *testing.T) {
	n, err := NewMusic(1).Read(make([]byte, FrameBytes*3+5))
	require.NoError(t, err)
	assert.Equal(t, FrameBytes*3, n)
}

func TestMusicStaysInRange(t *testing.T) {
	buf := make([]byte, SampleRate/2*FrameBytes)
	_, err := NewMusic(3).Read(buf)
	require.NoError(t, err)
	for _, s := range samples(buf) {
		require.LessOrEqual(t, math.Abs(float64(s)), 1.0)
	}
}

func TestFader(t *testing.T) {
	var f Fader
	f.Start(0.3, 1)
	assert.True(t, f.Active())
	assert.Equal(t, 0.0, f.Volume())

	assert.False(t, f.Update(0.5))
	assert.Greater(t, f.Volume(), 0.0)
	assert.Less(t, f.Volume(), 0.3)

	assert.True(t, f.Update(0.6))
	assert.Equal(t, 0.3, f.Volume())
	assert.False(t, f.Active())
	assert.False(t, f.Update(0.1))

	f.Start(0, 0)
	assert.Equal(t, 0.0, f.Volume())
	assert.False(t, f.Active())
}
