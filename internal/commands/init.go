package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/config"
)

func newInitCommand() *cobra.Command {
	var backend string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, backend, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized smsledger at %s (%s backend)\n", absDir, backend)
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "csv", "ledger backend: csv or sqlite")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing "+config.FileName)

	return cmd
}

func runInit(dir, backend string, force bool) error {
	cfg := config.Default()
	cfg.Ledger.Backend = backend
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists; pass --force to overwrite", cfgPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	for _, d := range []string{cfg.Ledger.Dir, "logs", filepath.Join("import", "processed")} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := "data/\nlogs/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
