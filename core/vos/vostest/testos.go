// Package vostest provides a deterministic in-memory VOS for tests.
package vostest

import (
	"fmt"
	"sort"
	"time"

	"github.com/josephlewis42/esh/core/vos"
	"github.com/spf13/afero"
)

const (
	// Hostname reported by the deterministic OS.
	Hostname = "esh-test"
	// Username reported by the deterministic OS.
	Username = "tester"
	// HomeDir is the user's home and the initial working directory.
	HomeDir = "/home/tester"
	// ShellPID is the PID the deterministic OS reports for the shell.
	ShellPID = 100
)

// Go's reference timestamp with a different value in each position.
var referenceTime = time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)

// TestOS is a VOS backed entirely by memory.
type TestOS struct {
	afero.Fs

	// Base is the underlying filesystem with absolute paths.
	Base afero.Fs
	// Env holds the environment variables.
	Env *vos.Env

	wd     *vos.Workdir
	procFs afero.Fs
}

var _ vos.VOS = (*TestOS)(nil)

// NewDeterministicOS creates an OS with a home directory, a fixed clock, a
// small process table and fake /proc statistics.
func NewDeterministicOS() *TestOS {
	base := afero.NewMemMapFs()
	env := vos.NewEnv([]string{"HOME=" + HomeDir, "USER=" + Username, "PATH=/bin"})
	wd := vos.NewWorkdir(HomeDir, env)
	out := &TestOS{
		Fs:     vos.NewWorkdirFs(base, wd),
		Base:   base,
		Env:    env,
		wd:     wd,
		procFs: afero.NewBasePathFs(base, "/proc"),
	}

	must(base.MkdirAll(HomeDir, 0755))
	must(base.MkdirAll("/tmp", 0777))

	for _, p := range []vos.Process{
		{PID: 1, PPID: 0, Name: "init"},
		{PID: 42, PPID: 1, Name: "sshd"},
		{PID: ShellPID, PPID: 42, Name: "esh"},
	} {
		out.AddProcess(p)
	}
	out.writeProc("/meminfo", "MemTotal:        8388608 kB\nMemFree:         1048576 kB\nMemAvailable:    2097152 kB\nSwapTotal:       1048576 kB\nSwapFree:         786432 kB\n")
	out.writeProc("/loadavg", "0.50 0.75 1.00 2/120 4242\n")
	out.writeProc("/uptime", "3723.00 100.00\n")
	out.writeProc("/sys/kernel/osrelease", "5.15.0-esh\n")

	return out
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func (t *TestOS) writeProc(name, contents string) {
	must(afero.WriteFile(t.procFs, name, []byte(contents), 0444))
}

// AddProcess adds an entry to the fake process table.
func (t *TestOS) AddProcess(p vos.Process) {
	t.writeProc(fmt.Sprintf("/%d/stat", p.PID), fmt.Sprintf("%d (%s) S %d %d %d 0\n", p.PID, p.Name, p.PPID, p.PID, p.PID))
}

// Getwd implements VOS.Getwd.
func (t *TestOS) Getwd() (string, error) {
	return t.wd.Get(), nil
}

// Chdir implements VOS.Chdir.
func (t *TestOS) Chdir(dir string) error {
	return t.wd.Chdir(t.Base, dir)
}

// Getenv implements VEnv.Getenv.
func (t *TestOS) Getenv(key string) string {
	return t.Env.Getenv(key)
}

// Environ implements VEnv.Environ.
func (t *TestOS) Environ() []string {
	return t.Env.Environ()
}

// UserHomeDir implements VEnv.UserHomeDir.
func (t *TestOS) UserHomeDir() (string, error) {
	return t.Env.Getenv("HOME"), nil
}

// Username implements VEnv.Username.
func (t *TestOS) Username() string {
	return Username
}

// Hostname implements VOS.Hostname.
func (t *TestOS) Hostname() (string, error) {
	return Hostname, nil
}

// Now implements VOS.Now.
func (t *TestOS) Now() time.Time {
	return referenceTime
}

// Getpid implements VProc.Getpid.
func (t *TestOS) Getpid() int {
	return ShellPID
}

// Processes implements VProc.Processes.
func (t *TestOS) Processes() ([]vos.Process, error) {
	return vos.ReadProcesses(t.procFs)
}

// Kill implements VProc.Kill by dropping the process from the table.
func (t *TestOS) Kill(pid int) error {
	if err := vos.CheckKillable(t, pid); err != nil {
		return err
	}
	dir := fmt.Sprintf("/%d", pid)
	if _, err := t.procFs.Stat(dir); err != nil {
		return fmt.Errorf("no such process")
	}
	return t.procFs.RemoveAll(dir)
}

// SysInfo implements VOS.SysInfo.
func (t *TestOS) SysInfo() (vos.SysInfo, error) {
	return vos.SysInfo{
		OS:        "linux",
		Arch:      "amd64",
		Kernel:    vos.ReadKernelRelease(t.procFs),
		Hostname:  Hostname,
		CPUs:      4,
		PageSize:  4096,
		GoVersion: "go1.18",
	}, nil
}

// SysStats implements VOS.SysStats.
func (t *TestOS) SysStats() (vos.SysStats, error) {
	return vos.ReadSysStats(t.procFs)
}

// WriteFiles populates the filesystem, names are resolved against the working
// directory.
func (t *TestOS) WriteFiles(files map[string]string) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := afero.WriteFile(t, name, []byte(files[name]), 0644); err != nil {
			return err
		}
		if err := t.Chtimes(name, referenceTime, referenceTime); err != nil {
			return err
		}
	}
	return nil
}
