// Package frameloop is the per-tick orchestrator: resize propagation,
// buffer/window update into a command-list tree, display flush, reactor
// suspension, keyboard and file-watch draining, and per-frame arena reset.
// It is the only package that wires every other engine package together.
package frameloop
