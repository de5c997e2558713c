package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbmods/go-phantom/internal/bbmods/config"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "バージョンを表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "bbmods v%s\n", config.Version)
			return nil
		},
	}
}
