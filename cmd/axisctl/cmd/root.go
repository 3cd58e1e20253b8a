package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	axconfig "github.com/mkoester/axisctl/core/config"
	axerror "github.com/mkoester/axisctl/core/error"
	axlog "github.com/mkoester/axisctl/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "axisctl",
	Short: "axisctl - interactive console for motion-control hardware",
	Long: `axisctl is a line-oriented control console for motion-control
hardware. Commands are written in MCL, a small command language with
variables, quoted values, and script files.

Built-in commands:
  HELP       - list commands or describe one command
  VERSION    - show the interpreter version
  SET        - assign a value to a variable
  GET        - print the value of a variable
  VARIABLES  - list all defined variables
  FILE       - queue the commands from a script file
  EXIT       - leave the interpreter`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/axisctl.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

const defaultConfigPath = "./configs/axisctl.toml"

// loadSettings reads the config file. A missing default file is not an
// error; an explicitly given file must exist.
func loadSettings() (*axconfig.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			return axconfig.New(), nil
		}
		path = defaultConfigPath
	}
	return axconfig.Load(path)
}

// newLogger builds the process logger from the config, with --verbose
// forcing debug level.
func newLogger(settings *axconfig.Config) *axlog.Logger {
	logger := axlog.New()

	if format := settings.GetString("log.format", "text"); format == "json" {
		logger = logger.WithFormat(axlog.FormatJSON)
	}

	levelName := settings.GetString("log.level", "info")
	if verbose {
		levelName = "debug"
	}
	if level, err := axlog.ParseLevel(levelName); err == nil {
		logger = logger.WithLevel(level)
	}

	return logger.WithName("axisctl")
}

// scriptCommand builds the FILE command line for path. MCL quotes have
// no escape sequences, so the path is wrapped in quotes only when it
// contains whitespace, and a path containing a double quote cannot be
// represented at all.
func scriptCommand(path string) (string, error) {
	if strings.Contains(path, `"`) {
		return "", axerror.Newf("script path contains a double quote: %s", path).
			WithCode(axerror.CodeScriptError).
			WithOperation("cmd.scriptCommand")
	}
	if strings.ContainsAny(path, " \t") {
		return `FILE "` + path + `"`, nil
	}
	return "FILE " + path, nil
}

func printError(msg string, err error) {
	if code := axerror.GetCode(err); code != axerror.CodeUnknown && code.IsValid() {
		fmt.Fprintf(os.Stderr, "error [%s/%s]: %s: %v\n", code.Category(), code, msg, err)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
