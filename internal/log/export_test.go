package log

// SetupLoggerWriters exposes the console writers for tests.
var SetupLoggerWriters = setupLogger
