package qpi

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

const defaultAPIURL = "https://api.quantum.example.com/v1"

// Account holds the credentials a device backend needs. Loaded from the
// environment, with a .env file honored when present.
type Account struct {
	Token string
	URL   string
}

// LoadAccount reads QPI_TOKEN and QPI_API_URL from the environment. A
// missing token is an error; the URL falls back to the public endpoint.
func LoadAccount() (*Account, error) {
	_ = godotenv.Load()

	token := os.Getenv("QPI_TOKEN")
	if token == "" {
		return nil, errors.New("no account credentials: set QPI_TOKEN")
	}
	url := os.Getenv("QPI_API_URL")
	if url == "" {
		url = defaultAPIURL
	}
	return &Account{Token: token, URL: url}, nil
}
