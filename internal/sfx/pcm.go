package sfx

import (
	"io"
	"math"
)

// EncodeStereoF32 converts mono samples to interleaved stereo float32 LE.
func EncodeStereoF32(samples []float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		putStereoF32(buf, i, s)
	}
	return buf
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

// ClipReader streams an encoded clip once.
type ClipReader struct {
	data []byte
	pos  int
}

func NewClipReader(data []byte) *ClipReader {
	return &ClipReader{data: data}
}

func (r *ClipReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// AmbientReader streams an Ambient loop as stereo float32 LE forever.
type AmbientReader struct {
	loop *Ambient
	mono []float64
}

func NewAmbientReader(loop *Ambient) *AmbientReader {
	return &AmbientReader{loop: loop}
}

func (r *AmbientReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if cap(r.mono) < frames {
		r.mono = make([]float64, frames)
	}
	mono := r.mono[:frames]
	r.loop.Fill(mono)
	for i, s := range mono {
		putStereoF32(p, i, s)
	}
	return frames * 8, nil
}
