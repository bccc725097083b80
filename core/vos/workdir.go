package vos

import (
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/afero"
)

// ResolvePath joins name onto dir unless it is already absolute.
func ResolvePath(dir, name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(dir, name)
}

// Within reports whether name is dir or lies below it, both absolute.
func Within(name, dir string) bool {
	return name == dir || strings.HasPrefix(name, strings.TrimSuffix(dir, "/")+"/")
}

// Workdir is the shell's working directory. It is kept by the shell rather
// than the process so builtins and pipeline stages agree on it over any
// filesystem.
type Workdir struct {
	mu  sync.RWMutex
	dir string
	env *Env
}

// NewWorkdir starts at dir. If env isn't nil its PWD and OLDPWD are kept up
// to date.
func NewWorkdir(dir string, env *Env) *Workdir {
	w := &Workdir{dir: path.Clean(dir), env: env}
	if env != nil {
		env.Setenv("PWD", w.dir)
	}
	return w
}

// Get returns the current directory.
func (w *Workdir) Get() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dir
}

// Resolve makes name absolute.
func (w *Workdir) Resolve(name string) string {
	return ResolvePath(w.Get(), name)
}

// Chdir moves to dir, which must be a directory on fsys.
func (w *Workdir) Chdir(fsys afero.Fs, dir string) error {
	target := w.Resolve(dir)
	fi, err := fsys.Stat(target)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}

	w.mu.Lock()
	previous := w.dir
	w.dir = target
	w.mu.Unlock()

	if w.env != nil {
		w.env.Setenv("OLDPWD", previous)
		w.env.Setenv("PWD", target)
	}
	return nil
}

// WorkdirFs resolves relative names against a Workdir before passing them
// to the base filesystem.
type WorkdirFs struct {
	base afero.Fs
	wd   *Workdir
}

var _ afero.Fs = (*WorkdirFs)(nil)

func NewWorkdirFs(base afero.Fs, wd *Workdir) *WorkdirFs {
	return &WorkdirFs{base: base, wd: wd}
}

func (w *WorkdirFs) Name() string {
	return "WorkdirFs"
}

func (w *WorkdirFs) Create(name string) (afero.File, error) {
	return w.base.Create(w.wd.Resolve(name))
}

func (w *WorkdirFs) Mkdir(name string, perm os.FileMode) error {
	return w.base.Mkdir(w.wd.Resolve(name), perm)
}

func (w *WorkdirFs) MkdirAll(name string, perm os.FileMode) error {
	return w.base.MkdirAll(w.wd.Resolve(name), perm)
}

func (w *WorkdirFs) Open(name string) (afero.File, error) {
	return w.base.Open(w.wd.Resolve(name))
}

func (w *WorkdirFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return w.base.OpenFile(w.wd.Resolve(name), flag, perm)
}

func (w *WorkdirFs) Remove(name string) error {
	return w.base.Remove(w.wd.Resolve(name))
}

func (w *WorkdirFs) RemoveAll(name string) error {
	return w.base.RemoveAll(w.wd.Resolve(name))
}

func (w *WorkdirFs) Rename(oldname, newname string) error {
	return w.base.Rename(w.wd.Resolve(oldname), w.wd.Resolve(newname))
}

func (w *WorkdirFs) Stat(name string) (os.FileInfo, error) {
	return w.base.Stat(w.wd.Resolve(name))
}

func (w *WorkdirFs) Chmod(name string, mode os.FileMode) error {
	return w.base.Chmod(w.wd.Resolve(name), mode)
}

func (w *WorkdirFs) Chown(name string, uid, gid int) error {
	return w.base.Chown(w.wd.Resolve(name), uid, gid)
}

func (w *WorkdirFs) Chtimes(name string, atime, mtime time.Time) error {
	return w.base.Chtimes(w.wd.Resolve(name), atime, mtime)
}
