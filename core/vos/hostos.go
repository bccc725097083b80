package vos

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/afero"
)

// ErrInvalidPID is returned when killing PID 0 or a negative PID.
var ErrInvalidPID = errors.New("invalid pid")

// ErrKillSelf is returned when asked to kill the shell itself.
var ErrKillSelf = errors.New("refusing to kill self")

// HostOS is the VOS of the machine the shell runs on. The working directory
// and environment belong to the shell, the process never changes directory.
type HostOS struct {
	afero.Fs

	osFs   afero.Fs
	procFs afero.Fs
	env    *Env
	wd     *Workdir

	userOnce sync.Once
	username string
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS backed by the real filesystem and /proc.
func NewHostOS() *HostOS {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}

	osFs := afero.NewOsFs()
	env := NewEnv(os.Environ())
	wd := NewWorkdir(cwd, env)
	return &HostOS{
		Fs:     NewWorkdirFs(osFs, wd),
		osFs:   osFs,
		procFs: afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, "/proc")),
		env:    env,
		wd:     wd,
	}
}

// Getwd implements VOS.Getwd.
func (h *HostOS) Getwd() (string, error) {
	return h.wd.Get(), nil
}

// Chdir implements VOS.Chdir.
func (h *HostOS) Chdir(dir string) error {
	return h.wd.Chdir(h.osFs, dir)
}

// Getenv implements VEnv.Getenv.
func (h *HostOS) Getenv(key string) string {
	return h.env.Getenv(key)
}

// Environ implements VEnv.Environ.
func (h *HostOS) Environ() []string {
	return h.env.Environ()
}

// UserHomeDir implements VEnv.UserHomeDir.
func (h *HostOS) UserHomeDir() (string, error) {
	if home := h.env.Getenv("HOME"); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}

// Username implements VEnv.Username.
func (h *HostOS) Username() string {
	h.userOnce.Do(func() {
		if u, err := user.Current(); err == nil {
			h.username = u.Username
			return
		}
		h.username = h.env.Getenv("USER")
	})
	return h.username
}

// Hostname implements VOS.Hostname.
func (h *HostOS) Hostname() (string, error) {
	return os.Hostname()
}

// Now implements VOS.Now.
func (h *HostOS) Now() time.Time {
	return time.Now()
}

// Getpid implements VProc.Getpid.
func (h *HostOS) Getpid() int {
	return os.Getpid()
}

// Processes implements VProc.Processes.
func (h *HostOS) Processes() ([]Process, error) {
	return ReadProcesses(h.procFs)
}

// Kill implements VProc.Kill by sending SIGTERM.
func (h *HostOS) Kill(pid int) error {
	if err := CheckKillable(h, pid); err != nil {
		return err
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return process.Signal(syscall.SIGTERM)
}

// SysInfo implements VOS.SysInfo.
func (h *HostOS) SysInfo() (SysInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return SysInfo{}, fmt.Errorf("couldn't get hostname: %w", err)
	}
	return SysInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Kernel:    ReadKernelRelease(h.procFs),
		Hostname:  hostname,
		CPUs:      runtime.NumCPU(),
		PageSize:  os.Getpagesize(),
		GoVersion: runtime.Version(),
	}, nil
}

// SysStats implements VOS.SysStats.
func (h *HostOS) SysStats() (SysStats, error) {
	return ReadSysStats(h.procFs)
}

// CheckKillable rejects PIDs the kill builtin must never signal.
func CheckKillable(proc VProc, pid int) error {
	switch {
	case pid <= 0:
		return ErrInvalidPID
	case pid == proc.Getpid():
		return ErrKillSelf
	}
	return nil
}
