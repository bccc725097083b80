package commands

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

var listingFiles = map[string]string{
	"a.txt":   "hello\n",
	"b.go":    "package b\n",
	".hidden": "secret\n",
}

var treeFiles = map[string]string{
	"a.txt":          "hello\n",
	"b.go":           "package b\n",
	".hidden":        "secret\n",
	"docs/readme.md": "# docs\n",
}

func TestLs(t *testing.T) {
	cases := goldenTestSuite{
		"plain":   {Line: "ls", Files: treeFiles},
		"all":     {Line: "ls -a", Files: treeFiles},
		"tree":    {Line: "ls -r", Files: treeFiles},
		"long":    {Line: "ls -v", Files: listingFiles},
		"missing": {Line: "ls nope"},
	}

	cases.Run(t)
}

func TestLs_redirected(t *testing.T) {
	sh := newTestShell(t, listingFiles)

	out, err := sh.Run(t, "ls > listing.txt")

	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "a.txt  b.go  listing.txt\n", sh.ReadFile(t, "listing.txt"))
}

func TestColumnize(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"/alpha", "/beta", "/gamma", "/delta"} {
		if err := afero.WriteFile(fs, name, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	paths, err := afero.ReadDir(fs, "/")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, []int{5, 4, 5, 5}, columnize(paths, 80))
	assert.Equal(t, []int{5, 5}, columnize(paths, 12))
	assert.Equal(t, []int{5}, columnize(paths, 4))
	assert.Equal(t, []int{0}, columnize(nil, 80))
}

func TestDir(t *testing.T) {
	cases := goldenTestSuite{
		"files": {Line: "dir", Files: listingFiles},
	}

	cases.Run(t)
}

func TestDir_tooManyArgs(t *testing.T) {
	sh := newTestShell(t, nil)

	out, err := sh.Run(t, "dir a b")

	assert.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, "dir: usage: dir [DIR]\n", out)
}

func TestRew(t *testing.T) {
	cases := map[string]struct {
		line    string
		want    string
		wantErr bool
	}{
		"file":     {line: "rew a.txt", want: "hello\n"},
		"files":    {line: "rew a.txt b.go", want: "hello\npackage b\n"},
		"stdin":    {line: "rew < b.go", want: "package b\n"},
		"missing":  {line: "rew nope a.txt", want: "rew: nope: file does not exist\nhello\n", wantErr: true},
		"no-input": {line: "rew", want: "rew: usage: rew FILE\n", wantErr: true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			sh := newTestShell(t, listingFiles)

			out, err := sh.Run(t, tc.line)

			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestStats(t *testing.T) {
	files := map[string]string{
		"notes.txt": "hello world\nsecond line\n",
	}
	cases := goldenTestSuite{
		"file":  {Line: "stats notes.txt", Files: files},
		"stdin": {Line: "stats < notes.txt", Files: files},
	}

	cases.Run(t)
}

func TestWcCount(t *testing.T) {
	cases := map[string]struct {
		in    string
		lines int
		words int
		chars int
		bytes int
	}{
		"empty":       {in: ""},
		"one-word":    {in: "word", words: 1, chars: 4, bytes: 4},
		"leading-ws":  {in: "  two words\n", lines: 1, words: 2, chars: 12, bytes: 12},
		"multibyte":   {in: "héllo\n", lines: 1, words: 1, chars: 6, bytes: 7},
		"blank-lines": {in: "\n\n\n", lines: 3, chars: 3, bytes: 3},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			var count wcCount
			count.Write([]byte(tc.in))

			assert.Equal(t, tc.lines, count.lines, "lines")
			assert.Equal(t, tc.words, count.words, "words")
			assert.Equal(t, tc.chars, count.chars, "chars")
			assert.Equal(t, tc.bytes, count.bytes, "bytes")
		})
	}
}

func TestHeadTail(t *testing.T) {
	files := map[string]string{
		"count.txt": "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n",
	}

	cases := map[string]struct {
		line    string
		want    string
		wantErr bool
	}{
		"head-default":     {line: "head count.txt", want: "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"},
		"head-count-after": {line: "head count.txt -n 3", want: "1\n2\n3\n"},
		"head-count-first": {line: "head -n 2 count.txt", want: "1\n2\n"},
		"head-zero":        {line: "head count.txt -n 0", want: ""},
		"head-stdin":       {line: "head -n 1 < count.txt", want: "1\n"},
		"head-bad-count":   {line: "head count.txt -n abc", want: "head: invalid number of lines: \"abc\"\n", wantErr: true},
		"head-missing":     {line: "head nope.txt", want: "head: nope.txt: file does not exist\n", wantErr: true},
		"head-no-input":    {line: "head", want: "head: usage: head FILE -n COUNT\n", wantErr: true},
		"tail-default":     {line: "tail count.txt", want: "3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"},
		"tail-count":       {line: "tail count.txt -n 2", want: "11\n12\n"},
		"tail-more":        {line: "tail count.txt -n 20", want: "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"},
		"tail-stdin":       {line: "tail -n 1 < count.txt", want: "12\n"},
		"tail-huge-count":  {line: "tail count.txt -n 99999999999999", want: "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"},
		"tail-zero":        {line: "tail count.txt -n 0", want: ""},
		"tail-negative":    {line: "tail count.txt -n -3", want: "tail: invalid number of lines: \"-3\"\n", wantErr: true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			sh := newTestShell(t, files)

			out, err := sh.Run(t, tc.line)

			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestHead_redirectToFile(t *testing.T) {
	sh := newTestShell(t, map[string]string{"in.txt": "a\nb\nc\n"})

	_, err := sh.Run(t, "head in.txt -n 2 > out.txt")
	assert.NoError(t, err)
	_, err = sh.Run(t, "tail in.txt -n 1 >> out.txt")
	assert.NoError(t, err)

	assert.Equal(t, "a\nb\nc\n", sh.ReadFile(t, "out.txt"))
}

func TestMv(t *testing.T) {
	sh := newTestShell(t, map[string]string{
		"a.txt":        "a",
		"dest/keep.md": "keep",
	})

	out, err := sh.Run(t, "mv a.txt b.txt")
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "a", sh.ReadFile(t, "b.txt"))

	out, err = sh.Run(t, "mv b.txt dest")
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "a", sh.ReadFile(t, "dest/b.txt"))

	out, err = sh.Run(t, "mv nope.txt other.txt")
	assert.Error(t, err)
	assert.Equal(t, "mv: nope.txt: file does not exist\n", out)
}

func TestCp(t *testing.T) {
	files := map[string]string{
		"a.txt":         "a",
		"src/one.txt":   "one",
		"src/sub/2.txt": "two",
	}

	t.Run("file", func(t *testing.T) {
		sh := newTestShell(t, files)

		out, err := sh.Run(t, "cp a.txt b.txt")

		assert.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, "a", sh.ReadFile(t, "b.txt"))
		assert.Equal(t, "a", sh.ReadFile(t, "a.txt"))
	})

	t.Run("verbose", func(t *testing.T) {
		sh := newTestShell(t, files)

		out, err := sh.Run(t, "cp -v a.txt src")

		assert.NoError(t, err)
		assert.Equal(t, "\"a.txt\" -> \"src/a.txt\"\n", out)
	})

	t.Run("directory-needs-recursive", func(t *testing.T) {
		sh := newTestShell(t, files)

		out, err := sh.Run(t, "cp src copy")

		assert.Error(t, err)
		assert.Equal(t, "cp: -r not specified; omitting directory \"src\"\n", out)
	})

	t.Run("recursive", func(t *testing.T) {
		sh := newTestShell(t, files)

		out, err := sh.Run(t, "cp -r src copy")

		assert.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, "one", sh.ReadFile(t, "copy/one.txt"))
		assert.Equal(t, "two", sh.ReadFile(t, "copy/sub/2.txt"))
	})

	t.Run("into-itself", func(t *testing.T) {
		cases := map[string]struct {
			line string
			want string
		}{
			"subdirectory": {line: "cp -r src src/sub", want: "cp: cannot copy a directory, \"src\", into itself, \"src/sub/src\"\n"},
			"new-child":    {line: "cp -r src src/new", want: "cp: cannot copy a directory, \"src\", into itself, \"src/new\"\n"},
			"same":         {line: "cp -r src /home/tester/src", want: "cp: cannot copy a directory, \"src\", into itself, \"/home/tester/src/src\"\n"},
		}

		for tn, tc := range cases {
			t.Run(tn, func(t *testing.T) {
				sh := newTestShell(t, files)

				out, err := sh.Run(t, tc.line)

				assert.Error(t, err)
				assert.Equal(t, tc.want, out)
				exists, _ := afero.Exists(sh.OS, "src/new")
				assert.False(t, exists)
			})
		}
	})

	t.Run("sibling-with-prefix", func(t *testing.T) {
		sh := newTestShell(t, files)

		_, err := sh.Run(t, "cp -r src src2")

		assert.NoError(t, err)
		assert.Equal(t, "one", sh.ReadFile(t, "src2/one.txt"))
	})
}

func TestMkdirRmdir(t *testing.T) {
	sh := newTestShell(t, map[string]string{"full/file.txt": "x"})

	out, err := sh.Run(t, "mkdir -v one")
	assert.NoError(t, err)
	assert.Equal(t, "mkdir: created directory \"one\"\n", out)

	_, err = sh.Run(t, "mkdir -r two/three")
	assert.NoError(t, err)
	isDir, err := afero.IsDir(sh.OS, "two/three")
	assert.NoError(t, err)
	assert.True(t, isDir)

	out, err = sh.Run(t, "rmdir one")
	assert.NoError(t, err)
	assert.Empty(t, out)
	exists, _ := afero.Exists(sh.OS, "one")
	assert.False(t, exists)

	out, err = sh.Run(t, "rmdir full")
	assert.Error(t, err)
	assert.Equal(t, "rmdir: failed to remove \"full\": directory not empty\n", out)

	out, err = sh.Run(t, "rmdir full/file.txt")
	assert.Error(t, err)
	assert.Equal(t, "rmdir: failed to remove \"full/file.txt\": not a directory\n", out)

	out, err = sh.Run(t, "mkdir")
	assert.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, "mkdir: usage: mkdir DIR\n", out)
}

func TestTouch(t *testing.T) {
	sh := newTestShell(t, map[string]string{"old.txt": "x"})
	later := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := sh.OS.Chtimes("old.txt", later, later); err != nil {
		t.Fatal(err)
	}

	out, err := sh.Run(t, "touch old.txt new.txt")
	assert.NoError(t, err)
	assert.Empty(t, out)

	for _, name := range []string{"old.txt", "new.txt"} {
		info, err := sh.OS.Stat(name)
		if err != nil {
			t.Fatal(err)
		}
		assert.True(t, info.ModTime().Equal(sh.OS.Now()), name)
	}
	assert.Equal(t, "x", sh.ReadFile(t, "old.txt"))
}

func TestRm(t *testing.T) {
	files := map[string]string{
		"a.txt":       "a",
		"dir/b.txt":   "b",
		"dir/c/d.txt": "d",
	}

	cases := map[string]struct {
		line    string
		want    string
		wantErr bool
		gone    []string
		kept    []string
	}{
		"file":             {line: "rm a.txt", gone: []string{"a.txt"}},
		"missing":          {line: "rm nope", want: "rm: can't remove \"nope\": no such file or directory\n", wantErr: true},
		"missing-force":    {line: "rm -f nope"},
		"dir-no-recursive": {line: "rm dir", want: "rm: can't remove \"dir\": is a directory\n", wantErr: true, kept: []string{"dir/b.txt"}},
		"dir-recursive":    {line: "rm -r dir", gone: []string{"dir", "dir/c/d.txt"}, kept: []string{"a.txt"}},
		"no-args":          {line: "rm", want: "rm: usage: rm [-r] [-f] PATH\n", wantErr: true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			sh := newTestShell(t, files)

			out, err := sh.Run(t, tc.line)

			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.want, out)
			for _, name := range tc.gone {
				exists, _ := afero.Exists(sh.OS, name)
				assert.False(t, exists, name)
			}
			for _, name := range tc.kept {
				exists, _ := afero.Exists(sh.OS, name)
				assert.True(t, exists, name)
			}
		})
	}
}
