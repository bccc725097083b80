// Package vos is the seam between the shell and the operating system it
// runs on: a filesystem plus the process, environment and system queries the
// builtin commands need.
package vos

import (
	"time"

	"github.com/spf13/afero"
)

// VFS is the filesystem half of the virtual OS.
type VFS = afero.Fs

// VEnv exposes the environment and identity of the shell's user.
type VEnv interface {
	// Getenv retrieves the value of the environment variable named by the key.
	Getenv(key string) string

	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)

	// Username returns the login name of the current user.
	Username() string

	// Environ returns the environment pipeline stages start with.
	Environ() []string
}

// VProc exposes the process table.
type VProc interface {
	// Getpid returns the shell's own process ID.
	Getpid() int

	// Processes returns a snapshot of the running processes ordered by PID.
	Processes() ([]Process, error)

	// Kill asks the process to terminate.
	Kill(pid int) error
}

// VOS provides a virtual OS interface.
type VOS interface {
	VFS
	VEnv
	VProc

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// Chdir changes the current working directory.
	Chdir(dir string) error

	Hostname() (string, error)

	// Now returns the current time.
	Now() time.Time

	// SysInfo returns static information about the machine.
	SysInfo() (SysInfo, error)

	// SysStats returns a snapshot of memory and load figures.
	SysStats() (SysStats, error)
}

// Process is a single entry in the process table.
type Process struct {
	PID  int
	PPID int
	Name string
}

// SysInfo holds static machine information.
type SysInfo struct {
	OS        string
	Arch      string
	Kernel    string
	Hostname  string
	CPUs      int
	PageSize  int
	GoVersion string
}

// SysStats holds a point in time view of the system load.
type SysStats struct {
	MemTotal     uint64
	MemAvailable uint64
	SwapTotal    uint64
	SwapFree     uint64
	Load1        float64
	Load5        float64
	Load15       float64
	Uptime       time.Duration
}

// MemUsed returns the bytes of memory in use.
func (s SysStats) MemUsed() uint64 {
	if s.MemAvailable > s.MemTotal {
		return 0
	}
	return s.MemTotal - s.MemAvailable
}

// SwapUsed returns the bytes of swap in use.
func (s SysStats) SwapUsed() uint64 {
	if s.SwapFree > s.SwapTotal {
		return 0
	}
	return s.SwapTotal - s.SwapFree
}
