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

package server

import (
	"path/filepath"

	"github.com/sabouaram/minestormd/config"
)

// buildCommandLine returns the java invocation and working directory for
// desc, per spec.md §4.3: "java -Xms<min> -Xmx<max> -jar <jar> [nogui if
// vanilla] [<extra flags>]". Spawning goes through os/exec directly (argv,
// no shell) rather than a literal system shell, since extra flags already
// arrive as a parsed list and direct exec avoids shell-quoting pitfalls
// while preserving the exact argument order the spec names.
func buildCommandLine(desc config.ServerDescriptor) (args []string, dir string) {
	args = []string{
		"java",
		"-Xms" + desc.StartCommand.Ram.Min,
		"-Xmx" + desc.StartCommand.Ram.Max,
		"-jar", desc.StartCommand.Jar,
	}

	if desc.Type == config.TypeVanilla {
		args = append(args, "nogui")
	}

	args = append(args, desc.Flags...)

	dir = desc.StartCommand.Directory
	if dir == "" {
		dir = filepath.Dir(desc.StartCommand.Jar)
	}

	return args, dir
}

// stopCommand returns the shutdown command word written to a child's
// stdin before its configured stop message.
func stopCommand(t config.ServerType) string {
	if t == config.TypeBungeeCord {
		return "end"
	}

	return "stop"
}
