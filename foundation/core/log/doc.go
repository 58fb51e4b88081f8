// Package log provides structured logging for dandelion.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              correlation IDs, JSON/text/console output and integration
//              with the foundation error package.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Features:
//   - JSON, text and console output; JSON keys keep a stable order
//   - Context fields and correlation IDs carried by immutable logger copies
//   - LogError picks the level from a structured error's severity
//   - Timers for logging operation durations
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithCorrelationID(uuid.NewString())
//
//	logger.Info("applied operation", log.Field("op", "invert"))
//
//	timer := logger.StartTimer("decode")
//	// ...
//	timer.Stop()
package log
