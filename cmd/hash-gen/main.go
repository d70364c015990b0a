// Command hash-gen prints a bcrypt hash for the given password, useful
// for seeding accounts by hand.
package main

import (
	"fmt"
	"os"

	"healthplans.backend/pkg/crypto"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-gen <password>")
		os.Exit(1)
	}

	hash, err := crypto.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash-gen: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
