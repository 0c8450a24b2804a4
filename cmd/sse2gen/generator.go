// Copyright 2025 go-sse2 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/imports"
)

const licenseHeader = `// Copyright 2025 go-sse2 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
`

// Target is one generated file.
type Target struct {
	Name string
	// Path is the output location relative to the repository root.
	Path string
	Emit func(*bytes.Buffer)
}

var targets = map[string]Target{
	"vectors":   {Name: "vectors", Path: filepath.Join("lanes", "vectors.gen.go"), Emit: emitVectors},
	"byteshift": {Name: "byteshift", Path: filepath.Join("sse2", "byteshift.gen.go"), Emit: emitByteShift},
}

// AvailableTargets returns the known target names, sorted.
func AvailableTargets() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generator renders targets and writes them to disk.
type Generator struct {
	// Target is a name from AvailableTargets or "all".
	Target string
	// Output overrides the file path for a single target.
	Output string
	// Root is the repository root used for "all".
	Root string
	Log  *Logger
}

// Run executes the generation pipeline.
func (g *Generator) Run() error {
	if g.Log == nil {
		g.Log = NoopLogger()
	}

	if g.Target == "all" {
		if g.Output != "" {
			return fmt.Errorf("-output cannot be combined with target all")
		}
		mod, err := modulePath(g.Root)
		if err != nil {
			return err
		}
		g.Log.Debug("module root", "module", mod, "root", g.Root)
		for _, name := range AvailableTargets() {
			t := targets[name]
			if err := g.generate(t, filepath.Join(g.Root, t.Path)); err != nil {
				return err
			}
		}
		return nil
	}

	t, ok := targets[g.Target]
	if !ok {
		return fmt.Errorf("unknown target %q (available: %v)", g.Target, AvailableTargets())
	}
	out := g.Output
	if out == "" {
		out = filepath.Join(g.Root, t.Path)
	}
	return g.generate(t, out)
}

// modulePath reads the module path from root/go.mod, refusing to write a
// full tree anywhere that is not a module root.
func modulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("root %q is not a module root: %w", root, err)
	}
	mod := modfile.ModulePath(data)
	if mod == "" {
		return "", fmt.Errorf("%s: missing module directive", filepath.Join(root, "go.mod"))
	}
	return mod, nil
}

func (g *Generator) generate(t Target, path string) error {
	log := g.Log.WithTarget(t.Name)
	log.Debug("rendering", "path", path)

	src, err := Render(t, path)
	if err != nil {
		return fmt.Errorf("render %s: %w", t.Name, err)
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		log.LogWrite(path, 0, err)
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.LogWrite(path, len(src), nil)
	return nil
}

// Render produces the formatted source of t. The filename is only used by
// the formatter to resolve the package context.
func Render(t Target, filename string) ([]byte, error) {
	var buf bytes.Buffer
	t.Emit(&buf)

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return formatted, nil
}

func writeFileHeader(buf *bytes.Buffer, pkg string) {
	fmt.Fprintf(buf, "%s\n// Code generated by sse2gen. DO NOT EDIT.\n\npackage %s\n", licenseHeader, pkg)
}
