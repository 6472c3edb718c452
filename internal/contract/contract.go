// Package contract implements the precondition checks of the containers.
//
// The containers of this module are low-level building blocks which do not
// report misuse through return values: inserting a node which is already
// linked, splicing a range into itself, or handing an iterator of one list to
// another are programming errors. When checks are disabled (the default in
// release builds) such errors lead to corrupted lists. When they are enabled,
// violations are either logged or turned into panics carrying an error which
// wraps ErrViolation.
//
// Checks are enabled by default when building with the intrusive_debug tag,
// and may be reconfigured at runtime with Configure:
//
//	restore := contract.Configure(contract.WithMode(contract.ModePanic))
//	defer restore()
package contract

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Mode selects how contract violations are handled.
type Mode int

const (
	// ModeOff disables checks, violations are undefined behavior.
	ModeOff Mode = iota
	// ModeLog reports violations to the configured logger and carries on.
	ModeLog
	// ModePanic panics with an error wrapping ErrViolation.
	ModePanic
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeLog:
		return "log"
	case ModePanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrViolation is the error wrapped by all contract violations.
	ErrViolation = errors.New("contract violation")
)

// Config carries the configuration of contract checks.
type Config struct {
	Mode   Mode
	Logger logrus.FieldLogger
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration of the build.
func DefaultConfig() *Config {
	return &Config{
		Mode:   defaultMode,
		Logger: logrus.StandardLogger(),
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options of the contract checks.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// WithMode sets the way violations are handled.
//
// Default: ModePanic with the intrusive_debug build tag, ModeOff otherwise.
func WithMode(mode Mode) Option {
	return option(func(config *Config) { config.Mode = mode })
}

// WithLogger sets the logger that violations are reported to in ModeLog.
//
// Default: logrus.StandardLogger()
func WithLogger(logger logrus.FieldLogger) Option {
	return option(func(config *Config) { config.Logger = logger })
}

var config atomic.Pointer[Config]

func init() {
	config.Store(DefaultConfig())
}

// Configure replaces the configuration of contract checks, starting from the
// current one. The returned function restores the previous configuration.
func Configure(options ...Option) (restore func()) {
	prev := config.Load()
	next := *prev
	next.Apply(options...)
	if next.Logger == nil {
		next.Logger = logrus.StandardLogger()
	}
	config.Store(&next)
	return func() { config.Store(prev) }
}

// Enabled returns true if violations are reported. Callers may use it to skip
// checks which are expensive to evaluate, such as walking a whole list.
func Enabled() bool { return config.Load().Mode != ModeOff }

// Check reports a violation described by format and args if cond is false.
func Check(cond bool, format string, args ...interface{}) {
	if !cond {
		if c := config.Load(); c.Mode != ModeOff {
			violate(c, errors.Wrapf(ErrViolation, format, args...))
		}
	}
}

// Fail unconditionally reports a violation.
func Fail(format string, args ...interface{}) {
	if c := config.Load(); c.Mode != ModeOff {
		violate(c, errors.Wrapf(ErrViolation, format, args...))
	}
}

func violate(c *Config, err error) {
	switch c.Mode {
	case ModeLog:
		c.Logger.WithError(err).WithField("mode", c.Mode).Error("container contract violated")
	case ModePanic:
		panic(err)
	}
}
