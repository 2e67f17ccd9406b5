package platform

// Package platform contains OS integration: application data directories,
// revealing files in the system file manager and reading touchscreen input
// through evdev on Linux.
