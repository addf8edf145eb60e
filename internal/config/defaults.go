package config

import "time"

// Output modes.
const (
	OutputAuto     = "auto" // text on a TTY, markdown otherwise
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
)

// Default configuration values.
const (
	DefaultDialect     = "oscar"
	DefaultOutput      = OutputAuto
	DefaultConcurrency = 4
	DefaultTimeout     = 10 * time.Second
)

func defaults() map[string]any {
	return map[string]any{
		"dialect":            DefaultDialect,
		"output":             DefaultOutput,
		"verbose":            false,
		"verify.concurrency": DefaultConcurrency,
		"verify.timeout":     DefaultTimeout.String(),
	}
}
