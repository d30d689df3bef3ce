package core

// DebugMode controls whether error elements carry detailed messages.
// When false, error elements show a short generic message.
var DebugMode = true

// SetDebugMode enables or disables debug mode.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
