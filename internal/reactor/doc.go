// Package reactor wraps epoll readiness and inotify file-watch
// notifications behind the editor's single blocking call. The frame loop
// suspends in Update between ticks; everything else in the engine runs to
// completion without yielding.
package reactor
