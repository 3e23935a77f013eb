// Package clitest runs a command in process against YAML described cases,
// each with its own arguments and environment, and compares stdout, stderr
// and the exit code separately.
package clitest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case 对应 YAML 文件中的单个测试用例
type Case struct {
	Name   string            `yaml:"name"`
	Args   []string          `yaml:"args"` // 参数数组，规避引号问题
	Env    map[string]string `yaml:"env"`
	Expect Expect            `yaml:"expect"`
}

type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// File is one YAML file of cases.
type File struct {
	Name  string
	Cases []Case `yaml:"cases"`
}

// Suite holds every case file of a directory and the program they run.
type Suite struct {
	Files []*File
	name  string
	run   func() int
}

// Read loads every .yaml / .yml file under dir; the cases run name via run.
func Read(dir string, name string, run func() int) (*Suite, error) {
	s := &Suite{name: name, run: run}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		ext := strings.ToLower(filepath.Ext(path))
		if d.IsDir() || (ext != ".yaml" && ext != ".yml") {
			return nil
		}
		f, err := readFile(path)
		if err != nil {
			return err
		}
		s.Files = append(s.Files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f := &File{Name: filepath.Base(path)}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("%s: no cases", path)
	}
	return f, nil
}

// Run executes every case as a subtest. Cases must not run in parallel.
func (s *Suite) Run(t *testing.T) {
	for _, f := range s.Files {
		t.Run(f.Name, func(t *testing.T) {
			for i, c := range f.Cases {
				name := c.Name
				if name == "" {
					name = fmt.Sprintf("case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					s.runCase(t, c)
				})
			}
		})
	}
}

func (s *Suite) runCase(t *testing.T, c Case) {
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.Setenv(k, c.Env[k])
	}

	stdout, stderr, code := s.capture(t, c.Args)

	if code != c.Expect.ExitCode {
		t.Errorf("exit code: got %d, want %d", code, c.Expect.ExitCode)
	}
	if stdout != c.Expect.Stdout {
		t.Errorf("stdout mismatch:\ngot:\n%s\nwant:\n%s", stdout, c.Expect.Stdout)
	}
	if stderr != c.Expect.Stderr {
		t.Errorf("stderr mismatch:\ngot:\n%s\nwant:\n%s", stderr, c.Expect.Stderr)
	}
}

// capture 替换 os.Args / os.Stdout / os.Stderr 后执行程序，再恢复现场
func (s *Suite) capture(t *testing.T, args []string) (stdout, stderr string, code int) {
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	os.Args = append([]string{s.name}, args...)
	os.Stdout, os.Stderr = wOut, wErr
	defer func() {
		os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	}()

	drain := func(r io.ReadCloser, dst *string, done chan<- struct{}) {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		*dst = buf.String()
		done <- struct{}{}
	}
	done := make(chan struct{}, 2)
	go drain(rOut, &stdout, done)
	go drain(rErr, &stderr, done)

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				code = -1
			}
		}()
		code = s.run()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	<-done
	<-done
	return stdout, stderr, code
}
