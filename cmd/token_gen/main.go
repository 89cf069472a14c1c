package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"aero-club/tower/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Mints a bearer token for the CRUD surface. Meant for operators handing
// out calendar access; the secret comes from AUTH_JWT_SECRET.
func main() {
	userID := flag.String("user", "", "user identifier (auth subject)")
	name := flag.String("name", "", "display name")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		log.Fatal("missing -user")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  *userID,
		"name": *name,
		"jti":  uuid.New().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(*ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(middleware.AuthSecret())
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(signed)
}
