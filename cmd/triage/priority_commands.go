package main

import (
	"github.com/spf13/cobra"
)

func newPriorityOneCommand(ctx *commandContext) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "priority1 <file>",
		Short: "Run only rule 1 (all statuses rejected)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, ctx, args[0], passOne, opts)
		},
	}
	bindRunFlags(cmd, opts)
	return cmd
}

func newPriorityTwoCommand(ctx *commandContext) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "priority2 <file>",
		Short: "Run only the crosscheck rules (2a-2d)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, ctx, args[0], passTwo, opts)
		},
	}
	bindRunFlags(cmd, opts)
	return cmd
}
