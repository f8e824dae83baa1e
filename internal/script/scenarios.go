// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed scenarios/*.lua
var builtinFS embed.FS

// Scenario is named Lua source.
type Scenario struct {
	Name   string
	Source string
}

// Builtin returns the embedded scenarios sorted by name.
func Builtin() ([]Scenario, error) {
	entries, err := fs.ReadDir(builtinFS, "scenarios")
	if err != nil {
		return nil, fmt.Errorf("read builtin scenarios: %w", err)
	}
	scenarios := make([]Scenario, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".lua" {
			continue
		}
		data, err := builtinFS.ReadFile(path.Join("scenarios", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read builtin scenario %s: %w", entry.Name(), err)
		}
		scenarios = append(scenarios, Scenario{
			Name:   strings.TrimSuffix(entry.Name(), ".lua"),
			Source: string(data),
		})
	}
	slices.SortFunc(scenarios, func(a, b Scenario) int { return strings.Compare(a.Name, b.Name) })
	return scenarios, nil
}
