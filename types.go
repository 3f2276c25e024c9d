package goparsing

// UnknownPolicy controls how an object schema treats input keys it does not
// declare.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                           // Report each unknown key as object.unknownField.
	UnknownPassthrough                      // Copy unknown keys into the output unchanged.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrict:
		return "strict"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "strip"
	}
}
