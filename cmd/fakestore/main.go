package main

import (
	"os"
	"time"

	"app/internal/devserver"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	secret := os.Getenv("FAKESTORE_SECRET")
	if secret == "" {
		secret = "dev_secret_change_me"
	}

	ttl := time.Hour
	if v := os.Getenv("FAKESTORE_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		ttl = d
	}

	addr := ":8090"
	if v := os.Getenv("PORT"); v != "" {
		if v[0] != ':' {
			addr = ":" + v
		} else {
			addr = v
		}
	}

	srv := devserver.New(secret, ttl)
	if err := srv.Start(addr); err != nil {
		panic(err)
	}
}
