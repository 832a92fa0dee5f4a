package user

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/planxhq/planx/cmd"
	"github.com/planxhq/planx/model"
)

var (
	database string
	password string

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage tenant users",
	}

	addCmd = &cobra.Command{
		Use:   "add USERNAME",
		Short: "Create a user in a tenant database",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return addUser(args[0])
		},
	}
)

func init() {
	userCmd.PersistentFlags().StringVar(&database, "database", "", "tenant database (defaults to the default database)")
	addCmd.Flags().StringVar(&password, "password", "", "password for the new user")

	userCmd.AddCommand(addCmd)
	cmd.Root.AddCommand(userCmd)
}

func addUser(username string) error {
	if password == "" {
		return errors.New("please provide a password with --password")
	}

	db, closeDB, err := cmd.OpenTenant(database)
	if err != nil {
		return err
	}
	defer closeDB()

	_, err = model.CreateUser(db, username, password)
	if err != nil {
		return errors.Wrapf(err, "failed to create user %s", username)
	}

	fmt.Printf("Created user: %s\n", username)

	return nil
}
