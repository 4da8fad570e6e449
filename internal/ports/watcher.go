package ports

// PlanWatcher monitors one plan file for changes so long-running sessions
// can re-crack on edit. The adapter (fsnotify) must absorb editor
// write/rename bursts before invoking onChange. Only one Watch call
// should be active at a time.
type PlanWatcher interface {
	// Watch starts monitoring path. onChange is called with the watched
	// path after each settled change. The callback may be invoked from
	// any goroutine. Returns an error if the file doesn't exist or
	// permissions are insufficient.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
