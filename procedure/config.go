package procedure

// Build-time conditionals of the original module become configuration
// resolved once at startup. Each option names the capability it removes;
// the defaults keep every capability on.
type configuration struct {
	raising       bool
	introspection bool
	typeChecks    bool
}

var settings = defaults()

func defaults() configuration {
	return configuration{
		raising:       true,
		introspection: true,
		typeChecks:    true,
	}
}

// Option disables one capability of the package. See Configure.
type Option func(*configuration)

// WithoutRaising makes descriptor validation a caller responsibility: the
// method Procure variants skip their checks and always return a nil error.
// Constructing an adapter over an invalid descriptor then has undefined
// invocation behavior; callers must pre-validate.
func WithoutRaising() Option {
	return func(c *configuration) { c.raising = false }
}

// WithoutIntrospection switches equality from concrete-kind recognition to
// erased-value identity. Two adapters then compare equal only when they are
// the same adapter value, so the caller must keep at most one adapter alive
// per distinct procedure for comparisons to mean anything. The registry
// package enforces that invariant; this package does not.
func WithoutIntrospection() Option {
	return func(c *configuration) { c.introspection = false }
}

// WithoutTypeChecks makes ProcureNamed accept any resolvable method name
// without verifying its shape against func(P) R. Mismatches surface as
// panics at invocation time instead of construction errors.
func WithoutTypeChecks() Option {
	return func(c *configuration) { c.typeChecks = false }
}

// Configure resolves the package configuration from the given options,
// starting from the defaults each time.
//
// Call it once, before any adapter is constructed or compared. It is not
// synchronized: reconfiguring while adapters are live changes the equality
// strategy under them.
func Configure(opts ...Option) {
	c := defaults()
	for _, opt := range opts {
		opt(&c)
	}
	settings = c
}

// IntrospectionAvailable reports whether equality recognizes the concrete
// adapter kind of its operand. When false, equality has degraded to
// erased-value identity under the uniqueness contract.
func IntrospectionAvailable() bool {
	return settings.introspection
}
