// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"io"
	"os"
)

// Process is a live handle on a started picker subprocess: a writable
// input stream, a readable output stream, and a wait.
type Process interface {
	// Stdin returns the subprocess's input stream. The caller closes it
	// to signal end of input.
	Stdin() io.WriteCloser

	// Stdout returns the subprocess's output stream. It must be read to
	// EOF before Wait.
	Stdout() io.Reader

	// Wait waits for the subprocess to exit and releases its pipes and
	// process handle. A nonzero exit status is not an error.
	Wait() error
}

// Spawner abstracts subprocess creation for testability.
type Spawner interface {
	// Spawn starts name with args: stdin piped, stdout piped, stderr
	// inherited from the host process unchanged.
	Spawn(name string, args ...string) (Process, error)

	// ReplaceProcess replaces the current process with the given command
	// (exec syscall). On success it never returns.
	ReplaceProcess(name string, args ...string) error
}

// FileSystem abstracts the read-side file system operations used by
// configuration and menu loading.
type FileSystem interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(path string) ([]byte, error)

	// Exists returns true if the path exists.
	Exists(path string) bool
}

// Default instances using real OS operations.
var (
	defaultFS      FileSystem = &osFileSystem{}
	defaultSpawner Spawner    = &osSpawner{}
)

// DefaultFS returns the default FileSystem implementation using real OS operations.
func DefaultFS() FileSystem {
	return defaultFS
}

// DefaultSpawner returns the default Spawner implementation.
func DefaultSpawner() Spawner {
	return defaultSpawner
}

// SetDefaultFS sets the default FileSystem (useful for testing).
func SetDefaultFS(fs FileSystem) {
	defaultFS = fs
}

// SetDefaultSpawner sets the default Spawner (useful for testing).
func SetDefaultSpawner(s Spawner) {
	defaultSpawner = s
}

// ResetDefaults restores the default OS implementations.
func ResetDefaults() {
	defaultFS = &osFileSystem{}
	defaultSpawner = &osSpawner{}
}

// osFileSystem implements FileSystem using real OS operations.
type osFileSystem struct{}

func (f *osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *osFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
