package cmd

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/c9s/stockind/pkg/config"
	"github.com/c9s/stockind/pkg/style"
	"github.com/c9s/stockind/pkg/types"
)

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newTableWriter(w io.Writer, withColor bool) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if withColor {
		t.SetStyle(*style.NewDefaultTableStyle())
	} else {
		t.SetStyle(*style.NewPlainTableStyle())
	}
	return t
}

func renderChaikinOsc(w io.Writer, output config.OutputConfig, results types.ChaikinOscResultSlice, withColor bool) error {
	results = results.Tail(output.Tail)

	switch output.Format {
	case config.OutputFormatJSON:
		return writeJSON(w, results)
	case config.OutputFormatCSV:
		return types.WriteCsv(w, results)
	}

	t := newTableWriter(w, withColor)
	t.SetTitle("Chaikin Oscillator")
	t.AppendHeader(table.Row{"#", "Date", "MF Multiplier", "MF Volume", "ADL", "Oscillator"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for _, r := range results {
		osc := "-"
		if r.Oscillator.Valid {
			osc = style.SignString(r.Oscillator.Decimal, 2)
			if withColor {
				osc = style.FlowColor(r.Oscillator.Decimal).Sprint(osc)
			}
		}

		t.AppendRow(table.Row{
			r.Index,
			r.Date.Format(types.DateFormat),
			r.MoneyFlowMultiplier.StringFixed(4),
			r.MoneyFlowVolume.StringFixed(2),
			r.Adl.StringFixed(2),
			osc,
		})
	}

	t.Render()
	return nil
}

func renderQuotes(w io.Writer, output config.OutputConfig, quotes types.QuoteSlice) error {
	if output.Tail > 0 && output.Tail < len(quotes) {
		quotes = quotes[len(quotes)-output.Tail:]
	}

	switch output.Format {
	case config.OutputFormatJSON:
		return writeJSON(w, quotes)
	case config.OutputFormatCSV:
		return types.WriteCsv(w, quotes)
	}

	t := newTableWriter(w, false)
	t.AppendHeader(table.Row{"#", "Date", "Open", "High", "Low", "Close", "Volume"})
	for _, q := range quotes {
		t.AppendRow(table.Row{
			q.Index,
			q.Date.Format(types.DateFormat),
			q.Open.String(),
			q.High.String(),
			q.Low.String(),
			q.Close.String(),
			q.Volume.String(),
		})
	}

	t.Render()
	return nil
}

func renderBasicData(w io.Writer, output config.OutputConfig, series types.BasicDataSlice) error {
	if output.Tail > 0 && output.Tail < len(series) {
		series = series[len(series)-output.Tail:]
	}

	switch output.Format {
	case config.OutputFormatJSON:
		return writeJSON(w, series)
	case config.OutputFormatCSV:
		return types.WriteCsv(w, series)
	}

	t := newTableWriter(w, false)
	t.AppendHeader(table.Row{"#", "Date", "Value"})
	for _, d := range series {
		t.AppendRow(table.Row{d.Index, d.Date.Format(types.DateFormat), d.Value.String()})
	}

	t.Render()
	return nil
}
