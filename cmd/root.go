package cmd

import (
	"io"
	golog "log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/planxhq/planx/util"
)

var (
	cfgFile     string
	cfgFileUsed string
	trace       bool
	debug       bool
	verbose     bool

	Root = &cobra.Command{
		Use:     "planx",
		Version: util.Version,
		Short:   "Planning data exchange service for frePPLe",
		Long:    ``,
	}
)

func Execute() {
	if err := Root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	viper.SetDefault("default_database", "main")
	viper.SetDefault("driver", "sqlite3")
	viper.SetDefault("dbpath", "/var/planx/planx.db")

	Root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file")
	Root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug messages")
	Root.PersistentFlags().BoolVar(&trace, "trace", false, "Enable trace messages")
	Root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose messages")

	Root.PersistentPreRunE = func(command *cobra.Command, args []string) error {
		return SetupLogging()
	}
}

func SetupLogging() error {
	if trace {
		logrus.SetLevel(logrus.TraceLevel)
	} else if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else if verbose {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	golog.SetOutput(io.Discard)

	if cfgFileUsed != "" {
		logrus.Infof("Using config file: %s", cfgFileUsed)
	}

	Root.SilenceUsage = true
	Root.SilenceErrors = true

	return nil
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			logrus.Fatal(err)
		}

		viper.AddConfigPath("/etc/planx/")
		viper.AddConfigPath(cwd)
		viper.SetConfigName("planx")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("planx")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		cfgFileUsed = viper.ConfigFileUsed()
	}
}
