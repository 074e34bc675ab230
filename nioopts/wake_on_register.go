package nioopts

type optionWakeOnRegister struct {
	v bool
}

// WakeOnRegister makes Register and Deregister signal the selector before
// taking its lock, so they do not wait out a Select blocked indefinitely.
// While such a call waits for the lock, Select polls instead of blocking and
// may return no monitors.
func WakeOnRegister(v bool) Option {
	return &optionWakeOnRegister{
		v: v,
	}
}

func (o *optionWakeOnRegister) Type() OptionType {
	return TypeWakeOnRegister
}

func (o *optionWakeOnRegister) Value() interface{} {
	return o.v
}
