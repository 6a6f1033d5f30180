// Command issue-token signs a shop access token for local testing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/jwt"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	userID := flag.String("user", "", "user id to put in the token")
	role := flag.String("role", jwt.RoleUser, "token role (user or admin)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "signing secret, defaults to $JWT_SECRET")
	flag.Parse()

	if *userID == "" || *secret == "" {
		flag.Usage()
		os.Exit(1)
	}

	if *role != jwt.RoleUser && *role != jwt.RoleAdmin {
		log.Fatalf("unknown role %q", *role)
	}

	token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(*secret), *userID, *role, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
