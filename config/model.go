/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"

	liberr "github.com/sabouaram/minestormd/errors"
)

type cfg struct {
	data map[string]any
}

// Load reads and merges one or more JSON configuration files, in order,
// flattening each into dotted keys and resolving `include` directives
// before a file's own keys are applied.
func Load(paths ...string) (Config, error) {
	acc := map[string]any{}

	for _, p := range paths {
		flat, err := loadFileFlat(p, map[string]bool{})
		if err != nil {
			return nil, err
		}

		mergeInto(acc, flat)
	}

	return &cfg{data: acc}, nil
}

// loadFileFlat reads path, flattens it, resolves its `include` entries
// (recursively, depth-first, in the order listed) and returns the combined
// flat map for that file alone. seen guards against include cycles.
func loadFileFlat(path string, seen map[string]bool) (map[string]any, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if seen[abs] {
		return map[string]any{}, nil
	}
	seen[abs] = true

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrorFileRead.Error(err)
	}

	var doc map[string]any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, ErrorFileDecode.Error(err)
	}

	flat := map[string]any{}
	flatten(doc, "", flat)

	acc := map[string]any{}

	if inc, ok := flat["include"]; ok {
		for _, p := range toStringSlice(inc) {
			incPath := p
			if !filepath.IsAbs(incPath) {
				incPath = filepath.Join(filepath.Dir(path), incPath)
			}

			sub, err := loadFileFlat(incPath, seen)
			if err != nil {
				return nil, ErrorInclude.Error(err)
			}

			mergeInto(acc, sub)
		}

		delete(flat, "include")
	}

	mergeInto(acc, flat)

	return acc, nil
}

// flatten recursively descends JSON objects, joining keys with ".". Arrays
// and scalars are leaves and are not descended into.
func flatten(v any, prefix string, out map[string]any) {
	if m, ok := v.(map[string]any); ok {
		if len(m) == 0 {
			out[prefix] = m
			return
		}

		for k, vv := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}

			flatten(vv, key, out)
		}

		return
	}

	out[prefix] = v
}

// mergeInto applies src on top of dst: when both the existing and the new
// value are arrays they are concatenated, otherwise the new value wins.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		if existing, ok := dst[k]; ok {
			ea, eok := existing.([]any)
			va, vok := v.([]any)

			if eok && vok {
				dst[k] = append(append([]any{}, ea...), va...)
				continue
			}
		}

		dst[k] = v
	}
}

func toStringSlice(v any) []string {
	var out []string

	switch t := v.(type) {
	case []any:
		for _, i := range t {
			if s, ok := i.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, t...)
	case string:
		out = append(out, t)
	}

	return out
}

func (c *cfg) Get(path string) (any, bool) {
	v, ok := c.data[path]
	return v, ok
}

func (c *cfg) GetString(path string, def string) string {
	if v, ok := c.data[path]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return def
}

func (c *cfg) GetInt(path string, def int) int {
	if v, ok := c.data[path]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}

	return def
}

func (c *cfg) GetFloat(path string, def float64) float64 {
	if v, ok := c.data[path]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}

	return def
}

func (c *cfg) GetBool(path string, def bool) bool {
	if v, ok := c.data[path]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}

	return def
}

func (c *cfg) GetDuration(path string, def time.Duration) time.Duration {
	if v, ok := c.data[path]; ok {
		switch n := v.(type) {
		case float64:
			return time.Duration(n * float64(time.Second))
		case int:
			return time.Duration(n) * time.Second
		}
	}

	return def
}

func (c *cfg) GetServers() ([]ServerDescriptor, error) {
	v, ok := c.data["available_servers"]
	if !ok {
		return nil, nil
	}

	var out []ServerDescriptor
	if err := mapstructure.Decode(v, &out); err != nil {
		return nil, liberr.UnknownError.Error(err)
	}

	return out, nil
}

func (c *cfg) Keys() []string {
	out := make([]string, 0, len(c.data))
	for k := range c.data {
		out = append(out, k)
	}

	return out
}
