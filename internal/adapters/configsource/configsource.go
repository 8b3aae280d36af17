// Package configsource implements the providers the secrets resolver walks:
// a local override file, a resource bundled into the binary and the process
// environment. All file-backed sources speak dotenv syntax.
package configsource

import (
	"bytes"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// FileSource reads a dotenv file from the local filesystem. A missing or
// unreadable file surfaces as an error; the resolver downgrades it to "no
// values from this source".
type FileSource struct {
	name string
	path string
}

func NewFile(name, path string) *FileSource {
	return &FileSource{name: name, path: path}
}

func (s *FileSource) Name() string { return s.name }

func (s *FileSource) ReadAll() (map[string]string, error) {
	return godotenv.Read(s.path)
}

// FSSource reads a dotenv resource packaged into the binary (or any fs.FS).
type FSSource struct {
	name string
	fsys fs.FS
	path string
}

func NewFS(name string, fsys fs.FS, path string) *FSSource {
	return &FSSource{name: name, fsys: fsys, path: path}
}

func (s *FSSource) Name() string { return s.name }

func (s *FSSource) ReadAll() (map[string]string, error) {
	data, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		return nil, err
	}
	return godotenv.Parse(bytes.NewReader(data))
}

// EnvSource exposes process environment variables with the given prefix,
// stripped of it. With an empty prefix the whole environment is visible.
type EnvSource struct {
	name   string
	prefix string
}

func NewEnv(name, prefix string) *EnvSource {
	return &EnvSource{name: name, prefix: prefix}
}

func (s *EnvSource) Name() string { return s.name }

func (s *EnvSource) ReadAll() (map[string]string, error) {
	out := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if s.prefix != "" {
			if !strings.HasPrefix(k, s.prefix) {
				continue
			}
			k = strings.TrimPrefix(k, s.prefix)
		}
		out[k] = v
	}
	return out, nil
}
