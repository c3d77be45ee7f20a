// Package container wires the converter's dependencies from a configuration:
// logger, key-value backend and preference store. Commands build everything
// they need from a Container rather than from package globals.
package container

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/syp-convert/internal/app"
	"fjacquet/syp-convert/internal/config"
	"fjacquet/syp-convert/internal/kvstore"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/preferences"
)

// Container holds the application dependencies. Fields are private and set
// once by NewContainer.
type Container struct {
	logger logging.Logger
	config *config.Config
	kv     kvstore.Store
	prefs  *preferences.Store
}

// Option customises NewContainer.
type Option func(*options)

type options struct {
	logOutput io.Writer
	kv        kvstore.Store
}

// WithLogOutput sends log output to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithStore uses kv instead of opening the configured backend.
func WithStore(kv kvstore.Store) Option {
	return func(o *options) { o.kv = kv }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("configuration cannot be nil")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.NewLogrusAdapterWithOutput(cfg.Log.Level, cfg.Log.Format, o.logOutput)

	kv := o.kv
	if kv == nil {
		var err error
		kv, err = kvstore.Open(kvstore.Backend(cfg.Storage.Backend), cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("error opening preference storage: %w", err)
		}
	}

	prefs := preferences.NewStore(kv, cfg.Storage.Key, logger.WithField(logging.FieldBackend, cfg.Storage.Backend))

	location := "(in memory)"
	if located, ok := kv.(interface{ Path() string }); ok {
		location = located.Path()
	}
	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldBackend, Value: cfg.Storage.Backend},
		logging.Field{Key: logging.FieldPath, Value: location})

	return &Container{
		logger: logger,
		config: cfg,
		kv:     kv,
		prefs:  prefs,
	}, nil
}

// NewController returns a controller whose preferences are loaded from, and
// saved to, the configured storage.
func (c *Container) NewController() *app.Controller {
	return app.NewController(c.prefs, c.logger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetPreferenceStore returns the preference store.
func (c *Container) GetPreferenceStore() *preferences.Store {
	return c.prefs
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if err := c.kv.Close(); err != nil {
		return fmt.Errorf("error closing preference storage: %w", err)
	}
	return nil
}
