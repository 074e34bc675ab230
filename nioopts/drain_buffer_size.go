package nioopts

type optionDrainBufferSize struct {
	n int
}

// DrainBufferSize sets the chunk size used when draining the wakeup pipe.
func DrainBufferSize(n int) Option {
	return &optionDrainBufferSize{
		n: n,
	}
}

func (o *optionDrainBufferSize) Type() OptionType {
	return TypeDrainBufferSize
}

func (o *optionDrainBufferSize) Value() interface{} {
	return o.n
}
