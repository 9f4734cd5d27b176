package intvm

type Width int

const (
	Width64 Width = 64
	// Width32 wraps arithmetic results to 32 bits, as the narrow machines did.
	Width32 Width = 32
)

func (w Width) wrap(v int64) int64 {
	if w == Width32 {
		return int64(int32(v))
	}
	return v
}

func (w Width) Valid() bool {
	return w == Width32 || w == Width64
}

const DefaultMemorySize = 10_000

type Config struct {
	MemorySize  int
	Width       Width
	Modes       ModeSet
	StrictInput bool
}

func DefaultConfig() Config {
	return Config{
		MemorySize: DefaultMemorySize,
		Width:      Width64,
		Modes:      AllModes,
	}
}

func (c Config) normalized() Config {
	if c.MemorySize <= 0 {
		c.MemorySize = DefaultMemorySize
	}
	if !c.Width.Valid() {
		c.Width = Width64
	}
	if c.Modes == 0 {
		c.Modes = AllModes
	}
	return c
}
