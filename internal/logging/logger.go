package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/muurk/openrazer-configure/internal/razer"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "OPENRAZER_CONFIGURE_LOG_LEVEL"

// DefaultLevel is used when neither a flag nor the environment sets a level.
const DefaultLevel = "info"

// ParseLevel converts a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// Initialize creates the global logger writing to stdout.
// If level is empty, it checks the OPENRAZER_CONFIGURE_LOG_LEVEL environment
// variable, then falls back to info. Levels are colourised only when stdout
// is a terminal.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		level = DefaultLevel
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLevel),
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if term.IsTerminal(int(os.Stdout.Fd())) {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// SetLogger replaces the global logger. Tests use it to observe output.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogDaemon logs the daemon the run talks to
func LogDaemon(version string, devices int) {
	Info("Connected to OpenRazer daemon",
		zap.String("daemon_version", version),
		zap.Int("devices", devices),
	)
}

// LogProfile logs the profile a run applies. source is empty for the
// built-in profile.
func LogProfile(source string, profile fmt.Stringer) {
	if source == "" {
		source = "built-in"
	}
	Info("Using profile",
		zap.String("source", source),
		zap.Stringer("profile", profile),
	)
}

// LogDevice logs the line identifying a device
func LogDevice(attrs razer.Attributes) {
	Info(attrs.Name)
}

// LogAttributes logs a device's static attributes. Battery fields of a
// wired device are reported as n/a.
func LogAttributes(attrs razer.Attributes) {
	battery, charging := "n/a", "n/a"
	if attrs.HasBattery {
		battery = fmt.Sprintf("%g", attrs.BatteryLevel)
		charging = fmt.Sprintf("%t", attrs.Charging)
	}

	Info("  attributes",
		zap.String("type", attrs.Type),
		zap.String("serial", attrs.Serial),
		zap.String("firmware_version", attrs.FirmwareVersion),
		zap.String("driver_version", attrs.DriverVersion),
		zap.String("battery_level", battery),
		zap.String("is_charging", charging),
	)
}

// LogConfigurables logs a device's settings listing. phase is "found"
// before configuration and "now" after it.
func LogConfigurables(serial, phase string, values fmt.Stringer) {
	Info("  configurables "+phase+": "+values.String(),
		zap.String("serial", serial),
	)
}

// LogChange logs a single write made to a device
func LogChange(serial string, change fmt.Stringer) {
	Debug("  wrote setting",
		zap.String("serial", serial),
		zap.Stringer("change", change),
	)
}

// LogSkipped logs a device that is left alone
func LogSkipped(serial, reason string) {
	Debug("  skipped",
		zap.String("serial", serial),
		zap.String("reason", reason),
	)
}

// LogNoDevices warns that the daemon lists no devices at all
func LogNoDevices() {
	Warn("No devices found")
}

// LogFailure logs the error that aborted a device's configuration
func LogFailure(serial string, err error) {
	Error("  configuration failed",
		zap.String("serial", serial),
		zap.Error(err),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
