package main

import (
	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/ansi"
	bt "github.com/fwojciec/mdview/bubbletea"
	"github.com/spf13/cobra"
)

func newViewCmd(a *app) *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "view [PATH]",
		Short: "Page through a document in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathArg(args)
			doc, err := a.fetchDocument(cmd.Context(), src, path)
			if err != nil {
				return a.reportError(cmd, "auto", err)
			}
			if path == "" {
				path = a.cfg.DefaultPath
			}
			theme := mdview.DefaultTheme()
			render := func(width int) string {
				return ansi.Render(doc, width, theme)
			}
			return bt.Run(cmd.Context(), bt.New(path, render, theme))
		},
	}
	src.addFlags(cmd)
	return cmd
}
