package migration

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/crowdfund/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"
	"strconv"
)

func databaseURL(dsn string) string {
	return "mysql://" + dsn
}

func newMigrate(dsn string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", source, databaseURL(dsn))
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		fmt.Println("[ERROR] close source:", sourceErr)
	}
	if dbErr != nil {
		fmt.Println("[ERROR] close database:", dbErr)
	}
}

// MigrateUp applies every up migration, a dirty database is an error
func MigrateUp(dsn string) error {
	m, err := newMigrate(dsn)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	_, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return errors.New("database is in dirty state")
	}

	err = m.Migrate(migrations.Version)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// MigrateUpForTesting panics on error
func MigrateUpForTesting(dsn string) {
	if err := MigrateUp(dsn); err != nil {
		panic(err)
	}
}

// MigrateCommand returns the cobra root command of the migrate binary
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return MigrateUp(dsn)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "roll back one migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrate(dsn)
				if err != nil {
					return err
				}
				defer closeMigrate(m)

				err = m.Steps(-1)
				if errors.Is(err, migrate.ErrNoChange) {
					return nil
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "set the migration version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}

				m, err := newMigrate(dsn)
				if err != nil {
					return err
				}
				defer closeMigrate(m)

				return m.Force(version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current migration version",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrate(dsn)
				if err != nil {
					return err
				}
				defer closeMigrate(m)

				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Println("Version:", version, "Dirty:", dirty)
				return nil
			},
		},
	)
	return rootCmd
}
