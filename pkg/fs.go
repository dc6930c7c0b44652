package pkg

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

type FS interface {
	fs.ReadDirFS
	fs.ReadFileFS
	fs.StatFS
	// Rename moves oldname to newname and fails if newname exists.
	Rename(oldname, newname string) error
	WriteFile(name string, data []byte) error
}

func containsAny(s, chars string) bool {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(chars); j++ {
			if s[i] == chars[j] {
				return true
			}
		}
	}
	return false
}

// DirFS is the directory tree rooted at the string value.
type DirFS string

func (dir DirFS) join(op, name string) (string, error) {
	if !fs.ValidPath(name) || runtime.GOOS == "windows" && containsAny(name, `\:`) {
		return "", &os.PathError{Op: op, Path: name, Err: os.ErrInvalid}
	}
	return filepath.Join(string(dir), filepath.FromSlash(name)), nil
}

func (dir DirFS) Open(name string) (fs.File, error) {
	pth, err := dir.join("open", name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(pth)
	if err != nil {
		return nil, err // nil fs.File
	}
	return f, nil
}

func (dir DirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	pth, err := dir.join("readdir", name)
	if err != nil {
		return nil, err
	}
	return os.ReadDir(pth)
}

func (dir DirFS) Stat(name string) (fs.FileInfo, error) {
	pth, err := dir.join("stat", name)
	if err != nil {
		return nil, err
	}
	return os.Lstat(pth)
}

func (dir DirFS) ReadFile(name string) ([]byte, error) {
	pth, err := dir.join("read", name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(pth)
}

// Rename refuses to replace an existing target, which os.Rename would do
// silently on unix. The check and the rename are not atomic together.
func (dir DirFS) Rename(oldname, newname string) error {
	oldp, err := dir.join("rename", oldname)
	if err != nil {
		return err
	}
	newp, err := dir.join("rename", newname)
	if err != nil {
		return err
	}
	if _, err = os.Lstat(oldp); err != nil {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: unwrapPathErr(err)}
	}
	if _, err = os.Lstat(newp); err == nil {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: fs.ErrExist}
	} else if !os.IsNotExist(err) {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: unwrapPathErr(err)}
	}
	return os.Rename(oldp, newp)
}

// WriteFile replaces the contents of an existing file, keeping its mode.
func (dir DirFS) WriteFile(name string, data []byte) error {
	pth, err := dir.join("write", name)
	if err != nil {
		return err
	}
	fi, err := os.Stat(pth)
	if err != nil {
		return err
	}
	return os.WriteFile(pth, data, fi.Mode().Perm())
}

func unwrapPathErr(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
