package main

import (
	"fmt"
	"github.com/QuangTung97/crowdfund/config"
	"github.com/QuangTung97/crowdfund/pkg/migration"
	"os"

	_ "github.com/golang-migrate/migrate/v4/database/mysql"
)

func main() {
	conf := config.Load()
	cmd := migration.MigrateCommand(conf.MySQL.DSN())
	err := cmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}
}
