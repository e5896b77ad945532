package main

import (
	"fmt"
	"text/tabwriter"

	"highscore-backend/internal/repository"

	"github.com/spf13/cobra"
)

func newGenreCmd() *cobra.Command {
	genreCmd := &cobra.Command{
		Use:   "genre",
		Short: "Manage game genres",
	}

	genreCmd.AddCommand(newGenreAddCmd())
	genreCmd.AddCommand(newGenreListCmd())

	return genreCmd
}

func newGenreAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Add one or more genres",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDatabase(cfg.Database)
			if err != nil {
				return err
			}
			defer closeDB()

			genres := repository.NewGenreRepository(db)
			for _, name := range args {
				genre, err := genres.Create(cmd.Context(), name)
				if err != nil {
					return fmt.Errorf("add genre %q: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", genre.ID, genre.Genre)
			}
			return nil
		},
	}
}

func newGenreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List genres",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDatabase(cfg.Database)
			if err != nil {
				return err
			}
			defer closeDB()

			genres, err := repository.NewGenreRepository(db).FindAll(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tGENRE")
			for _, g := range genres {
				fmt.Fprintf(w, "%d\t%s\n", g.ID, g.Genre)
			}
			return w.Flush()
		},
	}
}
