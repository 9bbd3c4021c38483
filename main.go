package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := (&cli.Command{
		Name:  "blocktui",
		Usage: "falling-block puzzle for the terminal",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "write debug logs to a file in the temp dir",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			EnableDebugLogging(c.Bool("debug"))
			DebugLogf("blocktui start debug=%v", c.Bool("debug"))
			program := tea.NewProgram(NewModel(), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}).Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
