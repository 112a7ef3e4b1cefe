package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"termline"
)

var traceLog string

// commands maps each console command to its response. The console engine
// only sees the words; dispatch stays out here in the read-eval loop.
var commands = map[string]string{
	"hello":   "Hello there!",
	"version": "termline demo 0.1",
	"colour":  "A lovely shade of teal.",
	"coffee":  "Brewing...",
	"count":   "One, two, three.",
}

var rootCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive demo console for the termline editor",
	Long: `Demo runs a small command console on top of the termline editor.

Type a command and press enter. Arrow keys browse the history, tab
completes against the known commands (press tab twice to list the
candidates), and 'quit' leaves the console.`,
	RunE:         runConsole,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&traceLog, "trace-log", "", "write a key event trace to this file")
}

func runConsole(cmd *cobra.Command, args []string) error {
	var opts []termline.Option
	if traceLog != "" {
		opts = append(opts, termline.WithTraceLog(traceLog))
	}
	cons, err := termline.New("demo> ", opts...)
	if err != nil {
		return err
	}
	defer cons.Close()

	words := []string{"help", "history", "quit"}
	for w := range commands {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		if err := cons.AddCommand(w); err != nil {
			return err
		}
	}

	for {
		line, err := cons.ReadLine()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		// Raw mode stays on while we print, so every line needs \r\n.
		switch line {
		case "":
		case "quit":
			fmt.Print("Goodbye!\r\n")
			return nil
		case "help":
			fmt.Print("Known commands:\r\n")
			for _, w := range words {
				fmt.Printf("  %s\r\n", w)
			}
		case "history":
			for _, h := range cons.History() {
				fmt.Printf("%s\r\n", h)
			}
		default:
			if msg, ok := commands[line]; ok {
				fmt.Printf("%s\r\n", msg)
			} else {
				fmt.Printf("You typed: %s\r\n", line)
			}
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "console error: %v\n", err)
		os.Exit(1)
	}
}
