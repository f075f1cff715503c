package cmdutil

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadDotenv loads the dotenv file when it exists.
func LoadDotenv(dotenvFile string) error {
	if dotenvFile == "" {
		return nil
	}

	if _, err := os.Stat(dotenvFile); err != nil {
		return nil
	}

	if err := godotenv.Load(dotenvFile); err != nil {
		return errors.Wrapf(err, "error loading dotenv file %s", dotenvFile)
	}

	return nil
}
