package nioopts

import "fmt"

type OptionType uint8

type Option interface {
	Type() OptionType
	Value() interface{}
}

const (
	TypeWaker OptionType = iota
	TypeBackend
	TypeWakeOnRegister
	TypeDrainBufferSize
	MaxOption
)

func (t OptionType) String() string {
	switch t {
	case TypeWaker:
		return "waker"
	case TypeBackend:
		return "backend"
	case TypeWakeOnRegister:
		return "wake_on_register"
	case TypeDrainBufferSize:
		return "drain_buffer_size"
	default:
		panic(fmt.Errorf("invalid option %d", t))
	}
}

// AddOption replaces the option of the same type in opts, or appends it.
func AddOption(add Option, opts []Option) []Option {
	for i, cur := range opts {
		if cur.Type() == add.Type() {
			opts[i] = add
			return opts
		}
	}
	opts = append(opts, add)
	return opts
}

func DelOption(del OptionType, opts []Option) []Option {
	for i := 0; i < len(opts); i++ {
		if opts[i].Type() == del {
			return append(opts[:i], opts[i+1:]...)
		}
	}
	return opts
}
