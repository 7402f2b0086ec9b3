package llm

// GenerateOptions holds model parameters resolved from config.yaml with
// optional runtime overrides.
type GenerateOptions struct {
	// Model is the model identifier (e.g. "llama-3.3-70b-versatile").
	Model string

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64

	// MaxTokens limits the response length. Zero means provider default.
	MaxTokens int
}

// GenerateOption is a functional option for GenerateOptions.
type GenerateOption func(*GenerateOptions)

// WithModel overrides the model for a single call.
func WithModel(model string) GenerateOption {
	return func(o *GenerateOptions) {
		o.Model = model
	}
}

// WithTemperature overrides the temperature for a single call.
func WithTemperature(temp float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temp
	}
}

// WithMaxTokens overrides the token limit for a single call.
func WithMaxTokens(tokens int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = tokens
	}
}

// Apply returns a copy of base with every option applied.
func (o GenerateOptions) Apply(opts ...GenerateOption) GenerateOptions {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
