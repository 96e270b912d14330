// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"tsanchor/internal/transpile"
	"tsanchor/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the tsanchor REPL, %s!\n", currentUser.Username)
	fmt.Println("Type a module, then .run to translate it. .clear discards the input, .quit exits.")
	repl.Start(os.Stdin, os.Stdout, transpile.Options{})
}
