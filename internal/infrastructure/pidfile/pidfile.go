package pidfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// PIDFile enforces that a single scheduler instance runs at a time.
// Overlapping sweeps would race each other finishing the same operations.
type PIDFile struct {
	path string
}

// New creates a new PIDFile manager
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Acquire claims the PID file, failing if a live instance holds it.
// Stale files left by a crashed process are removed and reclaimed.
func (p *PIDFile) Acquire() error {
	if pid, ok := p.readPID(); ok {
		if processAlive(pid) {
			return fmt.Errorf("scheduler is already running (PID %d)", pid)
		}
		_ = os.Remove(p.path)
	}

	data := strconv.Itoa(os.Getpid()) + "\n"
	if err := os.WriteFile(p.path, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// Release removes the PID file
func (p *PIDFile) Release() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// readPID returns the PID recorded in the file, if the file exists and
// holds a valid integer. A malformed file is removed.
func (p *PIDFile) readPID() (int, bool) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		_ = os.Remove(p.path)
		return 0, false
	}
	return pid, true
}

// processAlive reports whether a process with the given PID exists.
// Signal 0 performs the existence check without delivering anything.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM means the process exists under another user
	return errors.Is(err, syscall.EPERM)
}
