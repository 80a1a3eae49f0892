package application

// ArtifactTracker owns the temporary files a run produces. Every created or
// adopted path is deleted by CleanupAll, which the pipeline runs on every exit
// path.
type ArtifactTracker interface {
	// Create allocates a new temporary file for the given name pattern and
	// returns its path.
	Create(pattern string) (string, error)

	// Track adopts a file produced as a side effect elsewhere, such as a
	// transcript written next to its audio input.
	Track(path string)

	// Remove deletes a tracked file early and stops tracking it.
	Remove(path string) error

	// CleanupAll deletes every file still tracked.
	CleanupAll()
}
