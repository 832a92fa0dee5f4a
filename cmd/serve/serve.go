package serve

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/planxhq/planx/cmd"
	"github.com/planxhq/planx/server"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run server",
		Long:  `Run server`,
		RunE: func(command *cobra.Command, args []string) error {
			return serve()
		},
	}
)

func init() {
	serveCmd.Flags().String("listen", "0.0.0.0:8002", "address to listen on")
	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	serveCmd.Flags().String("cert", "", "path to ssl cert")
	viper.BindPFlag("cert", serveCmd.Flags().Lookup("cert"))
	serveCmd.Flags().String("key", "", "path to ssl key")
	viper.BindPFlag("key", serveCmd.Flags().Lookup("key"))
	serveCmd.Flags().String("dbpath", "/var/planx/planx.db", "path to default sqlite database")
	viper.BindPFlag("dbpath", serveCmd.Flags().Lookup("dbpath"))

	cmd.Root.AddCommand(serveCmd)
}

func serve() error {
	registry, err := cmd.OpenRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	if err := registry.Migrate(context.Background()); err != nil {
		return err
	}

	srv, err := server.NewServer(viper.GetString("listen"), registry)
	if err != nil {
		return err
	}

	srv.KeyFile = viper.GetString("key")
	srv.CertFile = viper.GetString("cert")

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt)
		<-quit
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logrus.Debug("Shutting down server")
		srv.Shutdown(ctx)
	}()

	return srv.Serve()
}
