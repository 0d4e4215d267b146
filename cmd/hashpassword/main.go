package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/yungbote/companyinfo-backend/internal/services"
)

// Reads a password from stdin and prints a bcrypt hash for ADMIN_PASSWORD_HASH.
func main() {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(os.Stderr, "read password: %v\n", err)
		os.Exit(1)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		fmt.Fprintln(os.Stderr, "empty password")
		os.Exit(1)
	}
	hash, err := services.HashPassword(pw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
