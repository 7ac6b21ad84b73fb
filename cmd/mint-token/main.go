package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ramorim1998/gerador-times-back/internal/services"
)

func main() {
	email := flag.String("email", "", "email claim to embed")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime (0 for no exp claim)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: mint-token [-email addr] [-ttl 24h] <user-id>")
		os.Exit(1)
	}

	token, err := services.MintUnsignedToken(flag.Arg(0), *email, *ttl)
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}

	fmt.Println(token)
}
