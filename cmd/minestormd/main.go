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

// Command minestormd is both the daemon and its own CLI front-end: `execute`
// boots the supervisor in this process, every other subcommand is a thin
// client.Client request against an already-running daemon.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sabouaram/minestormd/client"
	libcbr "github.com/sabouaram/minestormd/cobra"
	"github.com/sabouaram/minestormd/config"
	"github.com/sabouaram/minestormd/console"
	"github.com/sabouaram/minestormd/daemon"
	"github.com/sabouaram/minestormd/duration"
	liblog "github.com/sabouaram/minestormd/logger"
	"github.com/sabouaram/minestormd/wire"
	spfcbr "github.com/spf13/cobra"
)

const rootPackagePath = "github.com/sabouaram/minestormd"

var (
	cfgFile string
	address string
)

func main() {
	c := libcbr.New()

	c.SetVersion(libcbr.NewVersion(
		libcbr.License_MIT,
		"minestormd",
		"supervises locally-spawned JVM game servers and brokers a TCP control protocol to them",
		"2026-07-31",
		"dev",
		"0.1.0",
		"Nicolas JUHEL",
		rootPackagePath,
		nil,
		0,
	))
	c.SetForceNoInfo(true)
	c.Init()

	if err := c.SetFlagConfig(true, &cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	c.AddFlagString(true, &address, "address", "a", "127.0.0.1:45342", "address of a running minestormd to contact")

	c.AddCommand(executeCommand(c))
	c.AddCommand(consoleCommand(c))
	c.AddCommand(statusCommand(c))
	c.AddCommand(startCommand(c))
	c.AddCommand(stopCommand(c))
	c.AddCommand(startAllCommand(c))
	c.AddCommand(stopAllCommand(c))
	c.AddCommand(commandCommand(c))
	c.AddCommand(testCommand(c))

	c.AddCommandConfigure("cfg", "", defaultConfig)
	c.AddCommandCompletion()

	if err := c.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultConfig is the body the `configure` subcommand writes out as a
// config scaffold.
func defaultConfig() io.Reader {
	return strings.NewReader(`{
  "networking": {"port": 45342},
  "sessions": {"expiration": {"time": 300, "check_every": 30}},
  "servers": {"update_usage_informations_every": 5},
  "available_servers": []
}
`)
}

func executeCommand(c libcbr.Cobra) *spfcbr.Command {
	return &spfcbr.Command{
		Use:     "execute",
		Short:   "Run the minestormd supervisor daemon",
		Example: "execute -c /etc/minestormd.json",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			log := liblog.New(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			d, err := daemon.New(ctx, cfg, log)
			if err != nil {
				return err
			}

			return d.Run(ctx)
		},
	}
}

func loadConfig() (config.Config, error) {
	if cfgFile == "" {
		return config.Load()
	}

	return config.Load(cfgFile)
}

// consoleCommand is the interactive TUI client: it opens a session, then
// loops reading a line of input and either treating it as a local directive
// (`focus <name>`, `lines`, `quit`) or forwarding it as a `command` to the
// focused server, printing whatever new output `update` reports back.
func consoleCommand(c libcbr.Cobra) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "console",
		Short: "Run an interactive console against a running minestormd",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			return runConsole()
		},
	}
}

func runConsole() error {
	reply, err := dial(wire.Request{Status: wire.StatusNewSession})
	if err != nil {
		return err
	}
	sid, _ := reply["sid"].(string)

	console.ColorPrint.Println("connected, sid=" + sid)
	console.ColorPrint.Println("commands: focus <name>, status, lines, quit; anything else is sent to the focused server")

	for {
		text, err := console.PromptString("> ")
		if err != nil {
			break
		}
		text = strings.TrimSpace(text)

		switch {
		case text == "":
			continue
		case text == "quit" || text == "exit":
			_, _ = dial(wire.Request{Status: wire.StatusRemoveSession, Fields: map[string]interface{}{"sid": sid}})
			return nil
		case text == "status":
			reply, err = dial(wire.Request{Status: wire.StatusStatus, Fields: map[string]interface{}{"sid": sid}})
			if err != nil {
				console.ColorPrint.Println(err.Error())
				continue
			}
			printStatus(reply)
		case strings.HasPrefix(text, "focus "):
			name := strings.TrimSpace(strings.TrimPrefix(text, "focus "))
			if _, err = dial(wire.Request{Status: wire.StatusChangeFocus, Fields: map[string]interface{}{"sid": sid, "server": name}}); err != nil {
				console.ColorPrint.Println(err.Error())
			}
		case text == "lines":
			printUpdate(sid)
		default:
			if _, err = dial(wire.Request{Status: wire.StatusCommand, Fields: map[string]interface{}{"sid": sid, "command": text}}); err != nil {
				console.ColorPrint.Println(err.Error())
				continue
			}
			printUpdate(sid)
		}
	}

	return nil
}

func printUpdate(sid string) {
	reply, err := dial(wire.Request{Status: wire.StatusUpdate, Fields: map[string]interface{}{"sid": sid}})
	if err != nil {
		console.ColorPrint.Println(err.Error())
		return
	}

	lines, _ := reply["new_lines"].([]interface{})
	for _, l := range lines {
		if s, ok := l.(string); ok {
			console.ColorPrint.Println(s)
		}
	}
}

// dial is the common entry point for every client-side subcommand: connect,
// send one request, and translate a `failed`/`invalid_request` reply into a
// non-zero exit the way spec.md's CLI surface requires.
func dial(req wire.Request) (map[string]interface{}, error) {
	cl, err := client.New(client.Config{Address: address})
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	reply, err := cl.Send(req)
	if err != nil {
		return nil, err
	}

	if reason, failed := client.Failed(reply); failed {
		return nil, fmt.Errorf("%s", reason)
	}

	return reply, nil
}

// dialWithSession wraps dial for every status but `ping`/`new_session`,
// which the dispatcher only accepts alongside a valid sid (spec.md §4.6):
// it opens a session, injects the sid into fields, sends the real request,
// then tears the session back down.
func dialWithSession(status string, fields map[string]interface{}) (map[string]interface{}, error) {
	created, err := dial(wire.Request{Status: wire.StatusNewSession})
	if err != nil {
		return nil, err
	}
	sid, _ := created["sid"].(string)

	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["sid"] = sid

	reply, err := dial(wire.Request{Status: status, Fields: fields})

	_, _ = dial(wire.Request{Status: wire.StatusRemoveSession, Fields: map[string]interface{}{"sid": sid}})

	return reply, err
}

func statusCommand(c libcbr.Cobra) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "status",
		Short: "Print the status of every configured server",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			reply, err := dialWithSession(wire.StatusStatus, nil)
			if err != nil {
				return err
			}

			printStatus(reply)
			return nil
		},
	}
}

func printStatus(reply map[string]interface{}) {
	servers, _ := reply["servers"].(map[string]interface{})
	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry, _ := servers[name].(map[string]interface{})
		status, _ := entry["status"].(string)

		line := fmt.Sprintf("%-20s %s", name, status)
		if uptime, ok := entry["uptime"].(float64); ok {
			line += fmt.Sprintf("  uptime=%s", duration.Seconds(int64(uptime)).String())
		}
		if ram, ok := entry["ram_used"].(float64); ok {
			line += fmt.Sprintf("  ram=%.1f%%", ram)
		}

		console.ColorPrint.Println(line)
	}
}

func startCommand(c libcbr.Cobra) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "start <name>",
		Short: "Start a configured server",
		Args:  spfcbr.ExactArgs(1),
		RunE: func(cmd *spfcbr.Command, args []string) error {
			_, err := dialWithSession(wire.StatusStartServer, map[string]interface{}{"server": args[0]})
			return err
		},
	}
}

func stopCommand(c libcbr.Cobra) *spfcbr.Command {
	var message string

	cmd := &spfcbr.Command{
		Use:   "stop <name>",
		Short: "Stop a running server",
		Args:  spfcbr.ExactArgs(1),
		RunE: func(cmd *spfcbr.Command, args []string) error {
			_, err := dialWithSession(wire.StatusStopServer, map[string]interface{}{"server": args[0], "message": message})
			return err
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "stop message broadcast before shutdown")

	return cmd
}

func startAllCommand(c libcbr.Cobra) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "start-all",
		Short: "Start every configured server",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			_, err := dialWithSession(wire.StatusStartAllServers, nil)
			return err
		},
	}
}

func stopAllCommand(c libcbr.Cobra) *spfcbr.Command {
	var message string

	cmd := &spfcbr.Command{
		Use:   "stop-all",
		Short: "Stop every running server",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			_, err := dialWithSession(wire.StatusStopAllServers, map[string]interface{}{"message": message})
			return err
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "stop message broadcast before shutdown")

	return cmd
}

func commandCommand(c libcbr.Cobra) *spfcbr.Command {
	var server string

	cmd := &spfcbr.Command{
		Use:   "command <cmd>",
		Short: "Send a console command to a server",
		Args:  spfcbr.ExactArgs(1),
		RunE: func(cmd *spfcbr.Command, args []string) error {
			_, err := dialWithSession(wire.StatusCommand, map[string]interface{}{"command": args[0], "server": server})
			return err
		},
	}
	cmd.Flags().StringVarP(&server, "server", "s", "", "server to target (defaults to the session's focus)")

	return cmd
}

func testCommand(c libcbr.Cobra) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "test",
		Short: "Check that a minestormd is reachable",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			reply, err := dial(wire.Request{Status: wire.StatusPing})
			if err != nil {
				return err
			}
			if reply["status"] != wire.StatusPong {
				return fmt.Errorf("unexpected reply: %v", reply["status"])
			}

			console.ColorPrint.Println("minestormd is reachable at " + address)
			return nil
		},
	}
}
