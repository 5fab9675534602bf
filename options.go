package domselect

import "github.com/arjunvale/domselect/internal/store"

// Config holds the settings Parse applies when building a Document.
type Config struct {
	Mode store.Mode
}

// DefaultConfig returns the Config Parse uses when given no Options:
// HTML mode.
func DefaultConfig() Config {
	return Config{Mode: store.ModeHTML}
}

// Option configures a Config. This follows the same functional-options
// pattern the rest of the package's callers already expect from a Go
// selection library.
type Option func(*Config)

// WithXMLMode parses the input as XML instead of the HTML5 default. XML
// mode makes tag and attribute name comparisons case-sensitive.
func WithXMLMode() Option {
	return func(c *Config) {
		c.Mode = store.ModeXML
	}
}
