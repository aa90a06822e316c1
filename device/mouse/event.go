package mouse

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Op is one of the public mouse operations.
type Op uint8

const (
	OpPress Op = iota
	OpRelease
	OpClick
)

func (o Op) String() string {
	switch o {
	case OpPress:
		return "press"
	case OpRelease:
		return "release"
	case OpClick:
		return "click"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Event is the content of one synthetic mouse event. Movement, timestamp and
// extra info are always zero; the system assigns the timestamp.
type Event struct {
	Flags EventFlag
	Data  AuxData
}

// EventFor builds the event op injects for b.
func EventFor(op Op, b MouseButton) (Event, error) {
	if !b.Valid() {
		return Event{}, fmt.Errorf("%w: %d", ErrUnknownButton, uint8(b))
	}
	ev := Event{Data: AuxiliaryDataFor(b)}
	switch op {
	case OpPress:
		ev.Flags = DownFlagFor(b) | UpFlagFor(b)
	case OpRelease:
		ev.Flags = UpFlagFor(b)
	case OpClick:
		ev.Flags = DownFlagFor(b)
	default:
		return Event{}, fmt.Errorf("unknown mouse op: %s", op)
	}
	return ev, nil
}

// descriptorSize is sizeof(INPUT) for the running architecture.
//
// Layout (little-endian, ptr = pointer size):
//
//	type        u32
//	(pad)       4 bytes on 64-bit
//	dx, dy      i32, i32
//	mouseData   u32
//	dwFlags     u32
//	time        u32
//	(pad)       4 bytes on 64-bit
//	dwExtraInfo ptr
var descriptorSize = func() int {
	if bits.UintSize == 64 {
		return 40
	}
	return 28
}()

// MarshalBinary encodes the event as the host's INPUT record.
func (e Event) MarshalBinary() ([]byte, error) {
	b := make([]byte, descriptorSize)
	binary.LittleEndian.PutUint32(b[0:], inputTypeMouse)
	off := 4
	if bits.UintSize == 64 {
		off = 8
	}
	// dx, dy stay zero
	off += 8
	binary.LittleEndian.PutUint32(b[off:], uint32(e.Data))
	binary.LittleEndian.PutUint32(b[off+4:], uint32(e.Flags))
	// time and dwExtraInfo stay zero
	return b, nil
}

func (e Event) String() string {
	return fmt.Sprintf("flags=0x%04x data=0x%04x", uint32(e.Flags), uint16(e.Data))
}
