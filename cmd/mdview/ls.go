package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/mdview/fs"
	"github.com/spf13/cobra"
)

func newLsCmd(a *app) *cobra.Command {
	var (
		dir     string
		pattern string
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the documents in a local directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fs.Dir(dir); err != nil {
				return err
			}
			matches, err := fs.Glob(os.DirFS(dir), pattern)
			if err != nil {
				return err
			}
			a.logger.Debug("listed documents", "dir", dir, "pattern", pattern, "count", len(matches))
			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to search")
	cmd.Flags().StringVar(&pattern, "pattern", fs.DefaultPattern, "Glob pattern, ** matches any depth")
	return cmd
}
