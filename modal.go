//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/timburks/modal/pkg/commander"
	"github.com/timburks/modal/pkg/config"
	"github.com/timburks/modal/pkg/editor"
	"github.com/timburks/modal/pkg/logger"
	"github.com/timburks/modal/pkg/terminal"
	gott "github.com/timburks/modal/pkg/types"
)

var (
	version = "dev"

	configPath string
	debug      bool
	script     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "modal",
		Short: "A modal editor for the terminal",
		Long: `modal is a modal terminal editor. Normal mode moves the cursor with
hjkl or the arrow keys, i enters insert mode, Esc leaves it and q quits.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file path (default ~/.config/modal/config.yaml)")
	flags.String("backend", "", "terminal backend: tcell or termbox")
	flags.String("variant", "", "editor variant: statusline or minimal")
	flags.String("label", "", "status line label")
	flags.String("log-file", "", "log file path (default ~/.modallog)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.StringVar(&script, "eval", "", "run a lisp script on an in-memory screen and print the screen")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	log, closer := logger.New(logger.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer closer.Close()

	options := editor.Options{
		Variant: cfg.VariantValue(),
		Label:   cfg.StatusLine.Label,
		Logger:  log,
	}

	if script != "" {
		return evalScript(cmd.OutOrStdout(), script, cfg.Script, options)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("modal must be run from an interactive terminal")
	}
	t, err := terminal.New(cfg.Backend)
	if err != nil {
		return err
	}
	log.Info("editor starting", "version", version, "backend", cfg.Backend, "variant", options.Variant)
	err = terminal.Session(t, func(t gott.Terminal) error {
		e, err := editor.NewEditor(t, options)
		if err != nil {
			return err
		}
		return e.Run()
	})
	if err != nil {
		log.Error("editor failed", "err", err)
	}
	return err
}

// evalScript runs a lisp script against an editor drawing on an in-memory
// screen, then prints the screen and the script's value.
func evalScript(w io.Writer, path string, size config.ScriptConfig, options editor.Options) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	r := terminal.NewRecorder(gott.Size{Rows: size.Height, Cols: size.Width})
	return terminal.Session(r, func(t gott.Terminal) error {
		e, err := editor.NewEditor(t, options)
		if err != nil {
			return err
		}
		if err = e.Start(); err != nil {
			return err
		}
		c := commander.NewCommander(e, options.Logger)
		result, err := c.ParseEval(string(source))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err = e.Render(); err != nil {
			return err
		}
		fmt.Fprint(w, r.String())
		if result != "" {
			fmt.Fprintf(w, "=> %s\n", result)
		}
		return nil
	})
}
