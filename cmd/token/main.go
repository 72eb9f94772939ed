package main

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/yakoovad/octofit-tracker/internal/auth"
	"github.com/yakoovad/octofit-tracker/internal/config"
)

// token prints a signed bearer token for the configured secret.
func main() {
	_ = godotenv.Load()

	tokenType := flag.String("type", string(auth.TokenTypeAdmin), "token type: user or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("failed to load config: " + err.Error())
	}

	t := auth.TokenType(*tokenType)
	if t != auth.TokenTypeUser && t != auth.TokenTypeAdmin {
		fail("unknown token type " + *tokenType)
	}

	auth.SetSecret(cfg.TokenSecret)
	token, err := auth.GenerateToken(t, *ttl)
	if err != nil {
		fail("failed to generate token: " + err.Error())
	}

	_, _ = os.Stdout.WriteString(token + "\n")
}

func fail(msg string) {
	_, _ = os.Stderr.WriteString(msg + "\n")
	os.Exit(1)
}
