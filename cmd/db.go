package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/planxhq/planx/model"
)

// OpenRegistry opens every tenant database named in the config file.
// Without a databases section a single tenant is opened under the
// default name.
func OpenRegistry() (*model.Registry, error) {
	registry := model.NewRegistry(viper.GetString("default_database"))

	databases := viper.GetStringMap("databases")
	if len(databases) == 0 {
		name := registry.DefaultName()
		driver := viper.GetString("driver")

		dsn := viper.GetString("dsn")
		if dsn == "" && driver == "sqlite3" {
			dsn = viper.GetString("dbpath")
		}
		if dsn == "" {
			return nil, errors.New("no databases configured")
		}

		if err := registry.Open(name, driver, dsn); err != nil {
			return nil, err
		}

		logrus.Infof("Opened database: %s (%s)", name, driver)
		return registry, nil
	}

	for name := range databases {
		driver := viper.GetString("databases." + name + ".driver")
		if driver == "" {
			driver = viper.GetString("driver")
		}

		dsn := viper.GetString("databases." + name + ".dsn")
		if dsn == "" {
			registry.Close()
			return nil, errors.Errorf("no dsn configured for database %s", name)
		}

		if err := registry.Open(name, driver, dsn); err != nil {
			registry.Close()
			return nil, err
		}

		logrus.Infof("Opened database: %s (%s)", name, driver)
	}

	if _, err := registry.Get(registry.DefaultName()); err != nil {
		registry.Close()
		return nil, errors.Errorf("default database %s is not configured", registry.DefaultName())
	}

	return registry, nil
}

// OpenTenant opens a single tenant database by name.
func OpenTenant(name string) (*model.DB, func(), error) {
	if name == "" {
		name = viper.GetString("default_database")
	}

	registry, err := OpenRegistry()
	if err != nil {
		return nil, nil, err
	}

	db, err := registry.Get(name)
	if err != nil {
		registry.Close()
		return nil, nil, err
	}

	return db, func() { registry.Close() }, nil
}
