package types

import (
	"encoding/csv"
	"io"
)

// CsvFormatter is an interface used for dumping object into csv file
type CsvFormatter interface {
	CsvHeader() []string
	CsvRecords() [][]string
}

// WriteCsv writes the header and the records of the formatter to w.
func WriteCsv(w io.Writer, f CsvFormatter) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(f.CsvHeader()); err != nil {
		return err
	}

	if err := writer.WriteAll(f.CsvRecords()); err != nil {
		return err
	}

	return writer.Error()
}
