package domain

import (
	"fmt"
	"strings"
)

// ConfigValue is a resolved configuration entry and the source that won.
type ConfigValue struct {
	Key    string
	Value  string
	Source string
}

// ConfigSource reads all values from one provider (override file, bundled
// resource, environment). A failing source is worth a log line, never a crash.
type ConfigSource interface {
	Name() string
	ReadAll() (map[string]string, error)
}

// ConfigMissingError reports a mandatory key absent from every source tried.
type ConfigMissingError struct {
	Key     string
	Sources []string
}

func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("config: clave %q ausente en fuentes [%s]", e.Key, strings.Join(e.Sources, ", "))
}
