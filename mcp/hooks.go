package mcp

// Hooks let the CLI layer inject runtime dependencies (logging, version)
// without the tool handlers importing cmd.
type Hooks struct {
	LogInfo     func(string)
	LogError    func(error)
	LogToolCall func(string, interface{})
	GetVersion  func() string
}

var hooks = Hooks{
	LogInfo:     func(string) {},
	LogError:    func(error) {},
	LogToolCall: func(string, interface{}) {},
	GetVersion:  func() string { return "dev" },
}

// ConfigureHooks overrides the defaults with whatever the caller provides.
func ConfigureHooks(h Hooks) {
	if h.LogInfo != nil {
		hooks.LogInfo = h.LogInfo
	}
	if h.LogError != nil {
		hooks.LogError = h.LogError
	}
	if h.LogToolCall != nil {
		hooks.LogToolCall = h.LogToolCall
	}
	if h.GetVersion != nil {
		hooks.GetVersion = h.GetVersion
	}
}

func logInfo(msg string)                { hooks.LogInfo(msg) }
func logError(err error)                { hooks.LogError(err) }
func logToolCall(tool string, args any) { hooks.LogToolCall(tool, args) }
