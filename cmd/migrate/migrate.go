package migrate

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/planxhq/planx/cmd"
)

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations on every tenant database",
		RunE: func(command *cobra.Command, args []string) error {
			return migrate()
		},
	}
)

func init() {
	cmd.Root.AddCommand(migrateCmd)
}

func migrate() error {
	registry, err := cmd.OpenRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	if err := registry.Migrate(context.Background()); err != nil {
		return err
	}

	for _, name := range registry.Names() {
		logrus.Infof("Database up to date: %s", name)
	}

	return nil
}
