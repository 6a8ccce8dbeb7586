// Package logging provides structured logging for openrazer-configure.
//
// This package wraps a zap logger with convenience functions for the log
// lines a configure run produces. The log is the program's report: one
// line naming each device, one with its attributes, and the settings
// listings before and after configuration.
//
// # Log Levels
//
//   - Debug: Every write made to a device, skipped devices
//   - Info: Devices, attributes and settings listings (default)
//   - Warn: Non-fatal issues
//   - Error: The failure that ended the run
//
// # Configuration
//
// Initialize logging at startup. An empty level reads
// OPENRAZER_CONFIGURE_LOG_LEVEL and defaults to info:
//
//	if err := logging.Initialize(flagLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs are written to stdout in console format with ISO8601 timestamps:
//
//	2026-10-18T10:30:45.123+0200  INFO  Razer DeathAdder V2 Pro (Wireless)
//	2026-10-18T10:30:45.125+0200  INFO    configurables found: dpi=800x800, ...  {"serial": "PM2143H12345678"}
package logging
