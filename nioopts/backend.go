package nioopts

type BackendKind uint8

const (
	// BackendSelect waits with select(2). Descriptors must be below FD_SETSIZE.
	BackendSelect BackendKind = iota

	// BackendPoll waits with poll(2).
	BackendPoll
)

func (k BackendKind) String() string {
	switch k {
	case BackendSelect:
		return "select"
	case BackendPoll:
		return "poll"
	default:
		return "backend_unknown"
	}
}

type optionBackend struct {
	kind BackendKind
}

func Backend(kind BackendKind) Option {
	return &optionBackend{
		kind: kind,
	}
}

func (o *optionBackend) Type() OptionType {
	return TypeBackend
}

func (o *optionBackend) Value() interface{} {
	return o.kind
}
