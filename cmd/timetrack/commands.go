package main

import (
	"fmt"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and list the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			applied, err := s.AppliedMigrations(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, name := range applied {
				fmt.Fprintf(out, "%3d  %s\n", i+1, name)
			}
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show installation id, update channel and session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			channel, err := s.LoadUpdateChannel(ctx)
			if err != nil {
				return err
			}
			token, err := s.CurrentAPIToken(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database:       %s\n", a.cfg.DatabasePath)
			fmt.Fprintf(out, "desktop id:     %s\n", s.DesktopID())
			fmt.Fprintf(out, "update channel: %s\n", channel)
			fmt.Fprintf(out, "signed in:      %t\n", token != "")
			return nil
		},
	}
}

func newChannelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "channel <stable|beta|dev>",
		Short:     "Switch the update channel",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.UpdateChannelStable), string(models.UpdateChannelBeta), string(models.UpdateChannelDev)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.SaveUpdateChannel(ctx, models.UpdateChannel(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "update channel set to %s\n", args[0])
			return nil
		},
	}
}
