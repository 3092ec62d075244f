// hashpassword prints a bcrypt hash for AUTH_PASSWORD_HASH.
//
//	go run ./cmd/hashpassword 'my password'
//	echo -n 'my password' | go run ./cmd/hashpassword
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"radsafe-backend/internal/auth"
)

func main() {
	var pw string
	if len(os.Args) > 1 {
		pw = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read password: %v", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}
	if pw == "" {
		log.Fatal("empty password")
	}
	hash, err := auth.HashPassword(pw)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}
	fmt.Println(hash)
}
