package token

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/planxhq/planx/cmd"
	"github.com/planxhq/planx/model"
	"github.com/planxhq/planx/server"
)

var (
	database string
	company  string
	user     string
	ttl      time.Duration

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Mint a webtoken for the planning tool",
		Long: `Mint a webtoken signed with a company's webtoken key. The planning
tool attaches this token when posting plan results back.`,
		RunE: func(command *cobra.Command, args []string) error {
			return mintToken()
		},
	}
)

func init() {
	tokenCmd.Flags().StringVar(&database, "database", "", "tenant database (defaults to the default database)")
	tokenCmd.Flags().StringVar(&company, "company", "", "company name")
	tokenCmd.Flags().StringVar(&user, "user", "", "user claim for the token")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	cmd.Root.AddCommand(tokenCmd)
}

func mintToken() error {
	if company == "" || user == "" {
		return errors.New("please provide --company and --user")
	}

	db, closeDB, err := cmd.OpenTenant(database)
	if err != nil {
		return err
	}
	defer closeDB()

	c, err := model.FetchCompany(db, company)
	if err == model.ErrNotFound {
		return errors.Errorf("no such company: %s", company)
	} else if err != nil {
		return err
	}

	token, err := server.NewWebToken(user, c.WebtokenKey, ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}
