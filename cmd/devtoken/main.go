// Command devtoken prints a bearer token for an address, signed with the
// configured JWT_SECRET, for calling the API in development.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"eventticketing/config"
	"eventticketing/internal/adapters/auth"
	"eventticketing/internal/domain"
)

func main() {
	address := flag.String("address", "", "caller address to place in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *address == "" {
		fmt.Fprintln(os.Stderr, "devtoken: -address is required")
		flag.Usage()
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: load config: %v\n", err)
		os.Exit(1)
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(domain.Address(*address), *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
