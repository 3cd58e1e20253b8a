package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mkoester/axisctl/mcl"
)

var runCmd = &cobra.Command{
	Use:   "run <script>...",
	Short: "execute one or more MCL script files",
	Long: `Executes the given script files non-interactively in order.
Execution stops at the first failing command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScripts,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScripts(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		printError("cannot load config", err)
		return err
	}
	logger := newLogger(settings)

	engine, err := mcl.New(mcl.Options{
		Logger:        logger,
		Output:        os.Stdout,
		Version:       Version,
		MaxLineLength: settings.GetInt("shell.maxLineLength", 0),
	})
	if err != nil {
		printError("cannot start interpreter", err)
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			engine.Interrupt()
		}
	}()

	for _, script := range args {
		line, err := scriptCommand(script)
		if err != nil {
			printError(script, err)
			return err
		}
		if err := engine.Run(cmd.Context(), line); err != nil {
			printError(script, err)
			return err
		}
		for !engine.QueueEmpty() {
			if err := engine.PopAndRun(cmd.Context()); err != nil {
				printError(script, err)
				return err
			}
			if engine.ExitRequested() {
				return nil
			}
		}
	}
	return nil
}
