package nio

import (
	"fmt"

	"github.com/talostrading/nio/nioerrors"
)

// Interest is a bitmask of the readiness a Monitor asks for or observed.
type Interest uint32

const (
	Read Interest = 1 << iota
	Write

	ReadWrite = Read | Write
)

func ParseInterest(s string) (Interest, error) {
	switch s {
	case "r":
		return Read, nil
	case "w":
		return Write, nil
	case "rw":
		return ReadWrite, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, nioerrors.ErrInvalidInterests)
	}
}

func (i Interest) valid() bool {
	return i == Read || i == Write || i == ReadWrite
}

func (i Interest) String() string {
	switch i {
	case 0:
		return "none"
	case Read:
		return "r"
	case Write:
		return "w"
	case ReadWrite:
		return "rw"
	default:
		return fmt.Sprintf("interest(%d)", uint32(i))
	}
}
