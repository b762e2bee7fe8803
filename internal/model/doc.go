package model

// Package model defines domain data structures used across the app: chosen
// files, their kinds, session states and conversion jobs. Structures are kept
// free of UI types so they can be shared with the headless binary.
