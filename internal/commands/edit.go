package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/model"
)

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.logger.Info("deleted transaction", "id", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newRecategorizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize <id> <category>",
		Short: "Change the category of a saved transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, ok := model.ParseCategory(args[1])
			if !ok {
				names := make([]string, len(model.Categories))
				for i, c := range model.Categories {
					names[i] = string(c)
				}
				return fmt.Errorf("unknown category %q (want one of %s)", args[1], strings.Join(names, ", "))
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.UpdateCategory(cmd.Context(), args[0], cat); err != nil {
				return err
			}
			a.logger.Info("recategorized transaction", "id", args[0], "category", cat)
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", args[0], categoryLabel("", cat))
			return nil
		},
	}
}

func newClearCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to delete all transactions without --yes")
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			a.logger.Warn("cleared ledger", "count", n)
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d transactions\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting everything")

	return cmd
}
