package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed robots/*.yaml
var robotFS embed.FS

// ErrUnknownRobot is returned by Builtin for a name with no bundled definition.
var ErrUnknownRobot = errors.New("config: unknown built-in robot")

// BuiltinNames lists the bundled robot definitions in sorted order.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(robotFS, "robots")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)

	return names
}

// Builtin parses a bundled robot definition by name, e.g. "puma560".
func Builtin(name string) (*Robot, error) {
	data, err := robotFS.ReadFile(path.Join("robots", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownRobot, name, strings.Join(BuiltinNames(), ", "))
	}

	return Parse(data)
}
