package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/bootstrap"
)

var (
	configFlag string
	rootCmd    = &cobra.Command{
		Use:   "lrnbox",
		Short: "Local-first social micro-learning platform engine",
	}
)

// setup opens the store with seeding applied; callers must Close.
func setup(ctx context.Context) (*bootstrap.Dependencies, error) {
	return bootstrap.SetupDependencies(ctx, configFlag)
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", filepath.Join("configs", "config.yaml"), "Path to config file")

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Open the store and seed any missing collections with fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "store seeded")
			return nil
		},
	}
	rootCmd.AddCommand(seedCmd)

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Export the full store state as one JSON blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")
			deps, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			blob, err := deps.Store.CreateBackup(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), blob)
				return nil
			}
			return os.WriteFile(out, []byte(blob), 0o644)
		},
	}
	backupCmd.Flags().StringP("output", "o", "", "Write the backup to a file instead of stdout")
	rootCmd.AddCommand(backupCmd)

	restoreCmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Overwrite store state from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			deps, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			if err := deps.Store.RestoreBackup(cmd.Context(), string(blob)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "store restored")
			return nil
		},
	}
	rootCmd.AddCommand(restoreCmd)

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear every collection and re-seed with fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			if err := deps.Store.Reset(cmd.Context()); err != nil {
				return err
			}
			if err := deps.Store.Initialize(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "store reset to fixtures")
			return nil
		},
	}
	rootCmd.AddCommand(resetCmd)

	loginCmd := &cobra.Command{
		Use:   "login <handle>",
		Short: "Log in by handle (grants the daily bonus once per day)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			user, err := deps.Auth.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s), %d points, streak %d\n",
				user.Handle, user.Name, user.Points, user.Streak)
			return nil
		},
	}
	rootCmd.AddCommand(loginCmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()
			return deps.Auth.Logout(cmd.Context())
		},
	}
	rootCmd.AddCommand(logoutCmd)

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			user := deps.Store.CurrentUser(cmd.Context())
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), %d points\n", user.Handle, user.Name, user.Points)
			return nil
		},
	}
	rootCmd.AddCommand(whoamiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
