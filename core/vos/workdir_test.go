package vos

import (
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	cases := []struct {
		dir  string
		name string
		want string
	}{
		{"/home/esh", "notes.txt", "/home/esh/notes.txt"},
		{"/home/esh", "/etc/hosts", "/etc/hosts"},
		{"/home/esh", "../tmp/./x", "/home/tmp/x"},
		{"/", "a", "/a"},
		{"/home/esh", ".", "/home/esh"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolvePath(tc.dir, tc.name))
		})
	}
}

func TestWithin(t *testing.T) {
	cases := map[string]struct {
		name string
		dir  string
		want bool
	}{
		"same":          {"/a", "/a", true},
		"child":         {"/a/b", "/a", true},
		"grandchild":    {"/a/b/c", "/a", true},
		"sibling":       {"/ab", "/a", false},
		"parent":        {"/", "/a", false},
		"everything":    {"/a", "/", true},
		"unrelated":     {"/tmp/a", "/home", false},
		"trailing-path": {"/a/b", "/a/", true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, Within(tc.name, tc.dir))
		})
	}
}

func TestWorkdir_Chdir(t *testing.T) {
	base := afero.NewMemMapFs()
	assert.NoError(t, base.MkdirAll("/home/esh/src", 0755))
	assert.NoError(t, afero.WriteFile(base, "/home/esh/notes.txt", nil, 0644))

	env := NewEnv(nil)
	wd := NewWorkdir("/home/esh/", env)
	assert.Equal(t, "/home/esh", wd.Get())
	assert.Equal(t, "/home/esh", env.Getenv("PWD"))

	assert.NoError(t, wd.Chdir(base, "src"))
	assert.Equal(t, "/home/esh/src", wd.Get())
	assert.Equal(t, "/home/esh/src", env.Getenv("PWD"))
	assert.Equal(t, "/home/esh", env.Getenv("OLDPWD"))

	assert.NoError(t, wd.Chdir(base, "../.."))
	assert.Equal(t, "/home", wd.Get())

	assert.ErrorIs(t, wd.Chdir(base, "esh/notes.txt"), syscall.ENOTDIR)
	assert.ErrorIs(t, wd.Chdir(base, "/missing"), afero.ErrFileNotFound)
	assert.Equal(t, "/home", wd.Get())
	assert.Equal(t, "/home", env.Getenv("PWD"))
}

func TestWorkdirFs(t *testing.T) {
	base := afero.NewMemMapFs()
	assert.NoError(t, base.MkdirAll("/home/esh", 0755))
	wd := NewWorkdir("/home/esh", nil)
	fsys := NewWorkdirFs(base, wd)

	assert.NoError(t, afero.WriteFile(fsys, "notes.txt", []byte("hi"), 0644))
	ok, err := afero.Exists(base, "/home/esh/notes.txt")
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, wd.Chdir(base, "/"))
	_, err = fsys.Stat("notes.txt")
	assert.Error(t, err)

	assert.NoError(t, fsys.Rename("home/esh/notes.txt", "notes.txt"))
	contents, err := afero.ReadFile(base, "/notes.txt")
	assert.NoError(t, err)
	assert.Equal(t, "hi", string(contents))

	assert.NoError(t, fsys.MkdirAll("a/b", 0755))
	assert.NoError(t, fsys.Remove("a/b"))
	assert.NoError(t, fsys.RemoveAll("a"))
	ok, err = afero.DirExists(base, "/a")
	assert.NoError(t, err)
	assert.False(t, ok)
}
