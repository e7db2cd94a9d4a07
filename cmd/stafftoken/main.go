package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"resto-be/internal/auth"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	subject := flag.String("subject", "", "staff member the token is issued to")
	role := flag.String("role", auth.RoleStaff, "token role: STAFF or ADMIN")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if err := run(os.Stdout, os.Getenv("JWT_SECRET"), *subject, *role, *ttl); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, secret, subject, role string, ttl time.Duration) error {
	if subject == "" {
		return fmt.Errorf("-subject is required")
	}
	if !auth.IsStaff(role) {
		return fmt.Errorf("unknown role %q (use %s or %s)", role, auth.RoleStaff, auth.RoleAdmin)
	}

	token, err := auth.GenerateJWT(secret, subject, role, ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)
	return err
}
