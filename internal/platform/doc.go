package platform

// Package platform contains OS/platform integration: filesystem helpers,
// folder scans, glob expansion for the command line, and OS open/reveal of
// the produced PDF.
