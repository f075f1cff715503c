package csvsource

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/c9s/stockind/pkg/types"
)

// ReadQuotes reads all the quotes of a CSV stream with the default decoder.
func ReadQuotes(r io.Reader) ([]types.Quote, error) {
	return NewCSVQuoteReader(csv.NewReader(r)).ReadAll()
}

// ReadQuotesFromCSV reads a single CSV file into a slice of quotes.
func ReadQuotesFromCSV(path string) ([]types.Quote, error) {
	return ReadQuotesFromCSVWithDecoder(path, NewCSVQuoteReader)
}

// ReadQuotesFromCSVWithDecoder permits using a custom CSVQuoteReader.
func ReadQuotesFromCSVWithDecoder(path string, maker MakeCSVQuoteReader) ([]types.Quote, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open quote file")
	}
	//nolint:errcheck // Read ops only so safe to ignore err return
	defer file.Close()

	quotes, err := maker(csv.NewReader(file)).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read quotes from %s", path)
	}

	return quotes, nil
}
