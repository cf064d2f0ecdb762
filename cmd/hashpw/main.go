// Command hashpw prints the bcrypt hash of a password, for filling
// USER_PASSWORD_HASH and ADMIN_PASSWORD_HASH.
package main

import (
	"fmt"
	"os"

	"buchungssystem/internal/pkg/password"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	hash, err := password.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
