package csvsource

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/c9s/stockind/pkg/types"
)

var _ QuoteReader = (*CSVQuoteReader)(nil)

// QuoteReader is an interface for reading quotes.
type QuoteReader interface {
	Read() (types.Quote, error)
	ReadAll() ([]types.Quote, error)
}

// CSVQuoteReader is a QuoteReader that reads from a CSV file.
type CSVQuoteReader struct {
	csv     *csv.Reader
	decoder CSVQuoteDecoder
}

// MakeCSVQuoteReader is a factory method type that creates a new CSVQuoteReader.
type MakeCSVQuoteReader func(csv *csv.Reader) *CSVQuoteReader

// NewCSVQuoteReader creates a new CSVQuoteReader with the default decoder.
func NewCSVQuoteReader(csv *csv.Reader) *CSVQuoteReader {
	return NewCSVQuoteReaderWithDecoder(csv, DefaultCSVQuoteDecoder)
}

// NewCSVQuoteReaderWithDecoder creates a new CSVQuoteReader with the given decoder.
func NewCSVQuoteReaderWithDecoder(csv *csv.Reader, decoder CSVQuoteDecoder) *CSVQuoteReader {
	csv.FieldsPerRecord = -1
	csv.TrimLeadingSpace = true
	return &CSVQuoteReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next Quote from the underlying CSV data.
func (r *CSVQuoteReader) Read() (types.Quote, error) {
	rec, err := r.csv.Read()
	if err != nil {
		return types.Quote{}, err
	}

	return r.decoder(rec)
}

// ReadAll reads all the quotes from the underlying CSV data, a leading header row is skipped.
func (r *CSVQuoteReader) ReadAll() ([]types.Quote, error) {
	var quotes []types.Quote
	for line := 1; ; line++ {
		rec, err := r.csv.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if line == 1 && isHeader(rec) {
			continue
		}

		q, err := r.decoder(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		quotes = append(quotes, q)
	}

	return quotes, nil
}
