package company

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/planxhq/planx/cmd"
	"github.com/planxhq/planx/model"
)

var (
	database string

	companyCmd = &cobra.Command{
		Use:   "company",
		Short: "Manage companies",
	}

	addCmd = &cobra.Command{
		Use:   "add NAME",
		Short: "Create a company with a fresh webtoken key",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return addCompany(args[0])
		},
	}
)

func init() {
	companyCmd.PersistentFlags().StringVar(&database, "database", "", "tenant database (defaults to the default database)")

	companyCmd.AddCommand(addCmd)
	cmd.Root.AddCommand(companyCmd)
}

func addCompany(name string) error {
	db, closeDB, err := cmd.OpenTenant(database)
	if err != nil {
		return err
	}
	defer closeDB()

	c, err := model.CreateCompany(db, name)
	if err != nil {
		return errors.Wrapf(err, "failed to create company %s", name)
	}

	fmt.Printf("Created company: %s\n", c.Name)
	fmt.Printf("Webtoken key: %s\n", c.WebtokenKey)

	return nil
}
