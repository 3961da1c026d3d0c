package logging

// Package logging configures the process-wide log/slog logger and hands out
// module-scoped loggers to the rest of the app.
