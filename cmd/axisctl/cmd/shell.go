package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	axerror "github.com/mkoester/axisctl/core/error"
	"github.com/mkoester/axisctl/mcl"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	stoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "start the interactive console",
	Long: `Starts the interactive MCL console. Lines read from the terminal
are queued and executed in order; Ctrl+C stops the running command and
discards everything still pending. EXIT leaves the console.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
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

	// Ctrl+C raises the stop flag instead of killing the process
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			engine.Interrupt()
		}
	}()

	if startup := settings.GetString("shell.startupScript", ""); startup != "" {
		if line, err := scriptCommand(startup); err != nil {
			printError("startup script", err)
		} else if err := engine.Run(cmd.Context(), line); err != nil {
			printError("startup script", err)
		}
		drain(cmd.Context(), engine)
	}

	prompt := promptStyle.Render(settings.GetString("shell.prompt", "axisctl>")) + " "

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if engine.ExitRequested() {
			break
		}

		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}

		if err := engine.Enqueue(scanner.Text()); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}
		drain(cmd.Context(), engine)
	}

	return scanner.Err()
}

// drain executes pending lines until the queue is empty. A stop empties
// the queue inside the engine, so the loop terminates either way.
func drain(ctx context.Context, engine *mcl.Engine) {
	for !engine.QueueEmpty() {
		if err := engine.PopAndRun(ctx); err != nil {
			if axerror.HasCode(err, axerror.CodeCommandStopped) {
				fmt.Println(stoppedStyle.Render("stopped"))
				return
			}
			fmt.Println(errorStyle.Render(err.Error()))
		}
		if engine.ExitRequested() {
			return
		}
	}
}
