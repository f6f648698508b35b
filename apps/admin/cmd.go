package main

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mkaleko/shule/storage/database"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db *sqlx.DB
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate - apply pending database migrations")
	fmt.Println("  seed    - load sample data into the database")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "migrate":
		return database.Migrate(cli.db)
	case "seed":
		return cli.seed()
	default:
		cli.printUsage()
		return errHelp
	}
}
