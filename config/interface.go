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

// Package config loads the daemon's flat, dotted-key configuration table.
//
// A configuration is one or more JSON files merged in order: each file may
// name further files to merge first via a root-level "include" key, nested
// objects are flattened to dotted paths ("sessions.expiration.time"), arrays
// are treated as leaves and concatenated when both sides of a merge are
// arrays, and any other clash is resolved by the later value overwriting the
// earlier one.
package config

import "time"

// ServerType enumerates the kind of JVM-based server a ManagedServer wraps.
type ServerType string

const (
	TypeVanilla    ServerType = "vanilla"
	TypeBukkit     ServerType = "bukkit"
	TypeSpigot     ServerType = "spigot"
	TypeBungeeCord ServerType = "bungeecord"
)

// StartCommand describes how a managed server's child process is launched.
type StartCommand struct {
	Jar       string `mapstructure:"jar"`
	Directory string `mapstructure:"directory"`
	Ram       struct {
		Min string `mapstructure:"min"`
		Max string `mapstructure:"max"`
	} `mapstructure:"ram"`
}

// ServerDescriptor is one entry of the `available_servers` configuration
// array, decoded from the flat config's leaf value of that key.
type ServerDescriptor struct {
	Name         string       `mapstructure:"name"`
	Type         ServerType   `mapstructure:"type"`
	StartCommand StartCommand `mapstructure:"start_command"`
	Flags        []string     `mapstructure:"flags"`
	StopMessage  string       `mapstructure:"stop_message"`
}

// Config is a read-only, flat dotted-key configuration table.
type Config interface {
	// Get returns the raw value stored at path and whether it was present.
	Get(path string) (any, bool)

	// GetString returns the string at path, or def if absent or not a string.
	GetString(path string, def string) string

	// GetInt returns the int at path, or def if absent or not numeric.
	GetInt(path string, def int) int

	// GetBool returns the bool at path, or def if absent or not a bool.
	GetBool(path string, def bool) bool

	// GetFloat returns the float64 at path, or def if absent or not numeric.
	GetFloat(path string, def float64) float64

	// GetDuration interprets the numeric value at path as a count of seconds
	// and returns it as a time.Duration, or def if absent or not numeric.
	GetDuration(path string, def time.Duration) time.Duration

	// GetServers decodes the `available_servers` array into descriptors.
	GetServers() ([]ServerDescriptor, error)

	// Keys returns every dotted key currently held, unordered.
	Keys() []string
}
