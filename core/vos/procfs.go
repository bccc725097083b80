package vos

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// ReadProcesses lists the processes of a procfs mounted at the root of proc.
// Processes that exit while the table is being read are skipped.
func ReadProcesses(proc afero.Fs) ([]Process, error) {
	entries, err := afero.ReadDir(proc, "/")
	if err != nil {
		return nil, fmt.Errorf("couldn't read process table: %w", err)
	}

	var out []Process
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || !entry.IsDir() {
			continue
		}

		stat, err := afero.ReadFile(proc, fmt.Sprintf("/%d/stat", pid))
		if err != nil {
			continue
		}
		process, err := parseStat(stat)
		if err != nil {
			continue
		}
		out = append(out, process)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out, nil
}

// parseStat reads the "pid (comm) state ppid ..." format of /proc/PID/stat.
func parseStat(stat []byte) (Process, error) {
	open := bytes.IndexByte(stat, '(')
	end := bytes.LastIndexByte(stat, ')')
	if open < 0 || end < open {
		return Process{}, fmt.Errorf("malformed stat %q", stat)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(stat[:open])))
	if err != nil {
		return Process{}, err
	}

	rest := strings.Fields(string(stat[end+1:]))
	if len(rest) < 2 {
		return Process{}, fmt.Errorf("malformed stat %q", stat)
	}
	ppid, err := strconv.Atoi(rest[1])
	if err != nil {
		return Process{}, err
	}

	return Process{
		PID:  pid,
		PPID: ppid,
		Name: string(stat[open+1 : end]),
	}, nil
}

// ReadSysStats reads memory, load and uptime figures from a procfs.
func ReadSysStats(proc afero.Fs) (SysStats, error) {
	var out SysStats

	meminfo, err := afero.ReadFile(proc, "/meminfo")
	if err != nil {
		return out, fmt.Errorf("couldn't read memory info: %w", err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(meminfo))
	for scanner.Scan() {
		key, value, ok := parseMeminfoLine(scanner.Text())
		if !ok {
			continue
		}
		switch key {
		case "MemTotal":
			out.MemTotal = value
		case "MemAvailable":
			out.MemAvailable = value
		case "SwapTotal":
			out.SwapTotal = value
		case "SwapFree":
			out.SwapFree = value
		}
	}

	loadavg, err := afero.ReadFile(proc, "/loadavg")
	if err != nil {
		return out, fmt.Errorf("couldn't read load average: %w", err)
	}
	fields := strings.Fields(string(loadavg))
	if len(fields) < 3 {
		return out, fmt.Errorf("malformed load average %q", loadavg)
	}
	loads := []*float64{&out.Load1, &out.Load5, &out.Load15}
	for i, load := range loads {
		if *load, err = strconv.ParseFloat(fields[i], 64); err != nil {
			return out, fmt.Errorf("malformed load average %q: %w", loadavg, err)
		}
	}

	// Uptime is optional, some sandboxes hide it.
	if uptime, err := afero.ReadFile(proc, "/uptime"); err == nil {
		if fields := strings.Fields(string(uptime)); len(fields) > 0 {
			if seconds, err := strconv.ParseFloat(fields[0], 64); err == nil {
				out.Uptime = time.Duration(seconds * float64(time.Second))
			}
		}
	}

	return out, nil
}

// parseMeminfoLine parses "MemTotal:       16384 kB" into bytes.
func parseMeminfoLine(line string) (string, uint64, bool) {
	key, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", 0, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", 0, false
	}
	value, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return "", 0, false
	}
	if len(fields) > 1 && fields[1] == "kB" {
		value *= 1024
	}
	return key, value, true
}

// ReadKernelRelease returns the kernel release string, or "unknown".
func ReadKernelRelease(proc afero.Fs) string {
	release, err := afero.ReadFile(proc, "/sys/kernel/osrelease")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(release))
}
