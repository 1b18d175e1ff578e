package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/memo-api/app/cmd/schema"
	"github.com/ribgsilva/memo-api/platform/env"
	"go.uber.org/zap"
)

func listCommands() {
	fmt.Println("Commands")
	fmt.Println("\tschema\t\t\t- Manage the database schema")
	fmt.Println("\thelp\t\t\t- Print the commands available")
}

func main() {
	// empty logger
	log := zap.NewNop().Sugar()
	env.Load(log)

	if len(os.Args) < 2 {
		listCommands()
		return
	}

	switch os.Args[1] {
	case "schema":
		if err := schema.Run(log, os.Stdout, os.Args[2:]); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	default:
		listCommands()
	}
}
