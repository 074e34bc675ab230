package nioopts

type WakerKind uint8

const (
	// WakerPipe signals through a unidirectional pipe. Available on every unix.
	WakerPipe WakerKind = iota

	// WakerEventFd signals through an eventfd counter. Linux only, other
	// platforms fall back to WakerPipe.
	WakerEventFd
)

func (k WakerKind) String() string {
	switch k {
	case WakerPipe:
		return "pipe"
	case WakerEventFd:
		return "eventfd"
	default:
		return "waker_unknown"
	}
}

type optionWaker struct {
	kind WakerKind
}

// Waker selects the channel used to interrupt a blocked Select.
func Waker(kind WakerKind) Option {
	return &optionWaker{
		kind: kind,
	}
}

func (o *optionWaker) Type() OptionType {
	return TypeWaker
}

func (o *optionWaker) Value() interface{} {
	return o.kind
}
