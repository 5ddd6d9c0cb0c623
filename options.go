package binon

// Options configures Marshal/Unmarshal and their streaming counterparts.
// A zero Options selects the package defaults: specialization off, a depth
// guard of 64, logging and hooks disabled.
type Options struct {
	// Specialize enables the encoder's specialization optimizer (spec.md
	// §4.10): UInt for non-negative Int, Float32 where exact, TrueObj/bit
	// packing for Bool, SList/SKDict/SDict where a container is homogeneous.
	Specialize bool
	// MaxDepth bounds recursion through nested List/Dict values, guarding
	// against malicious or malformed input driving unbounded stack growth.
	MaxDepth int
	Logger   Logger
	Hooks    Hooks
}

const defaultMaxDepth = 64

// codecOptions is Options normalized with defaults applied, plus the
// current recursion depth threaded through Encode/Decode's internal calls.
type codecOptions struct {
	specialize bool
	maxDepth   int
	depth      int
	logger     Logger
	hooks      Hooks
}

func newCodecOptions(o Options) codecOptions {
	logger := o.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	hooks := o.Hooks
	if hooks == nil {
		hooks = NopHooks{}
	}
	return codecOptions{
		specialize: o.Specialize,
		maxDepth:   coalesce(o.MaxDepth, defaultMaxDepth),
		logger:     logger,
		hooks:      hooks,
	}
}

func (o codecOptions) nested() (codecOptions, error) {
	o.depth++
	if o.depth > o.maxDepth {
		return o, &ParseError{Offset: -1, Reason: "max nesting depth exceeded"}
	}
	return o, nil
}
