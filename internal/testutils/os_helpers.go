package testutils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	dirPermissions  = 0775
	filePermissions = 0700
)

func CopyFile(from, to string) error {
	from, err := filepath.Abs(from)
	if err != nil {
		return err
	}
	to, err = filepath.Abs(to)
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(to), dirPermissions)
	if err != nil {
		return err
	}

	fromF, err := os.OpenFile(from, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer fromF.Close()

	toF, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE, filePermissions)
	if err != nil {
		return err
	}
	defer toF.Close()

	_, err = io.Copy(toF, fromF)
	if err != nil {
		return err
	}
	return nil
}

// ReplaceStdout redirects os.Stdout into a pipe. getOutput closes the pipe and returns everything written to it;
// it must be called at most once. restore puts the previous os.Stdout back.
func ReplaceStdout() (restore func(), getOutput func() string) {
	return replaceFile(&os.Stdout)
}

// ReplaceStderr works like ReplaceStdout for os.Stderr.
func ReplaceStderr() (restore func(), getOutput func() string) {
	return replaceFile(&os.Stderr)
}

func replaceFile(f **os.File) (func(), func() string) {
	org := *f
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	*f = w
	out := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		out <- buf.String()
	}()
	var once sync.Once
	var res string
	getOutput := func() string {
		once.Do(func() {
			_ = w.Close()
			res = <-out
		})
		return res
	}
	restore := func() {
		getOutput()
		*f = org
	}
	return restore, getOutput
}
