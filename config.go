package roster

import "github.com/rs/zerolog"

// Config holds global configuration for the registry system.
var Config config = config{logger: zerolog.Nop()}

type config struct {
	logger zerolog.Logger
}

// SetLogger routes registry lifecycle events to the given logger. The default
// logger discards everything.
func (c *config) SetLogger(l zerolog.Logger) {
	c.logger = l
}
