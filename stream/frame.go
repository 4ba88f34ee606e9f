package stream

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/matt-g-everett/logocube/scene"
)

// frameSize is the encoded length: frame counter, two uint32 dimensions and
// fourteen float64 values.
const frameSize = 8 + 4 + 4 + 14*8

// StateFrame is one published snapshot of the logo mesh.
type StateFrame struct {
	State scene.State
}

// NewStateFrame creates a StateFrame from a snapshot.
func NewStateFrame(s scene.State) *StateFrame {
	f := new(StateFrame)
	f.State = s
	return f
}

// MarshalBinary converts a StateFrame into little endian binary data.
func (f *StateFrame) MarshalBinary() (data []byte, err error) {
	s := f.State
	data = make([]byte, 0, frameSize)
	data = binary.LittleEndian.AppendUint64(data, s.Frame)
	data = binary.LittleEndian.AppendUint32(data, uint32(s.Width))
	data = binary.LittleEndian.AppendUint32(data, uint32(s.Height))

	values := []float64{
		s.Aspect,
		s.Position.X, s.Position.Y, s.Position.Z,
		s.Rotation.X, s.Rotation.Y, s.Rotation.Z,
		s.Scale.X, s.Scale.Y, s.Scale.Z,
		s.SpinSpeed,
		0, 0, 0,
	}
	if s.Textured {
		values[11] = 1
	}
	for _, v := range values {
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
	}

	return data, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (f *StateFrame) UnmarshalBinary(data []byte) error {
	if len(data) != frameSize {
		return errors.New("stream: state frame has wrong length")
	}

	var s scene.State
	s.Frame = binary.LittleEndian.Uint64(data)
	s.Width = int(binary.LittleEndian.Uint32(data[8:]))
	s.Height = int(binary.LittleEndian.Uint32(data[12:]))

	values := make([]float64, 14)
	for i := range values {
		off := 16 + i*8
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
	}
	s.Aspect = values[0]
	s.Position = scene.Vec3{X: values[1], Y: values[2], Z: values[3]}
	s.Rotation = scene.Vec3{X: values[4], Y: values[5], Z: values[6]}
	s.Scale = scene.Vec3{X: values[7], Y: values[8], Z: values[9]}
	s.SpinSpeed = values[10]
	s.Textured = values[11] != 0

	f.State = s
	return nil
}
