package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPs(t *testing.T) {
	cases := goldenTestSuite{
		"all": {Line: "ps"},
	}

	cases.Run(t)
}

func TestKill(t *testing.T) {
	cases := map[string]struct {
		line    string
		want    string
		wantErr bool
	}{
		"zero":     {line: "kill 0", want: "kill: (0): invalid pid\n", wantErr: true},
		"negative": {line: "kill -1", want: "kill: (-1): invalid pid\n", wantErr: true},
		"self":     {line: "kill 100", want: "kill: (100): refusing to kill self\n", wantErr: true},
		"unknown":  {line: "kill 7", want: "kill: (7): no such process\n", wantErr: true},
		"not-pid":  {line: "kill abc", want: "kill: \"abc\": arguments must be process IDs\n", wantErr: true},
		"no-args":  {line: "kill", want: "kill: usage: kill PID\n", wantErr: true},
		"quiet":    {line: "kill 42"},
		"verbose":  {line: "kill -v 42", want: "terminated 42\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			sh := newTestShell(t, nil)

			out, err := sh.Run(t, tc.line)

			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestKill_removesProcess(t *testing.T) {
	sh := newTestShell(t, nil)

	_, err := sh.Run(t, "kill 42")
	assert.NoError(t, err)

	processes, err := sh.OS.Processes()
	assert.NoError(t, err)
	var pids []int
	for _, p := range processes {
		pids = append(pids, p.PID)
	}
	assert.Equal(t, []int{1, 100}, pids)
}
