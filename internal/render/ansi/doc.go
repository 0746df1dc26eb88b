// Package ansi translates a cmdlist command-list chain into the terminal
// byte stream: absolute cursor positioning via CSI, SGR format fragments,
// and whitespace substitution. It also exposes the handful of standalone
// CSI sequences the display and frame loop issue directly (cursor
// show/hide, clear-to-end).
package ansi
