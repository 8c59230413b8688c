package fluentlogger

import (
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config holds the connection settings for a Fluent Bit forwarder.
type Config struct {
	Host      string // e.g. "127.0.0.1", or "fluent-bit" inside Docker
	Port      int    // e.g. 24224
	TagPrefix string // common tag prefix for every log record of this service
}

// NewClient creates a new Fluent Bit client.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	// There is no ping: a successfully created client does not guarantee a live
	// connection. Errors surface on the first Post.
	return logger, nil
}
