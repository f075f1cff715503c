package types

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// CandlePart selects one field of a quote.
type CandlePart string

const (
	CandlePartOpen   CandlePart = "O"
	CandlePartHigh   CandlePart = "H"
	CandlePartLow    CandlePart = "L"
	CandlePartClose  CandlePart = "C"
	CandlePartVolume CandlePart = "V"
)

var ErrInvalidCandlePart = errors.New("invalid candle part, valid parts: O, H, L, C, V")

var candlePartNames = map[string]CandlePart{
	"o":      CandlePartOpen,
	"open":   CandlePartOpen,
	"h":      CandlePartHigh,
	"high":   CandlePartHigh,
	"l":      CandlePartLow,
	"low":    CandlePartLow,
	"c":      CandlePartClose,
	"close":  CandlePartClose,
	"v":      CandlePartVolume,
	"volume": CandlePartVolume,
}

// ParseCandlePart accepts the one-letter codes and the long field names, case-insensitive.
func ParseCandlePart(s string) (CandlePart, error) {
	if part, ok := candlePartNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return part, nil
	}

	return "", errors.Wrapf(ErrInvalidCandlePart, "given %q", s)
}

func (p CandlePart) Valid() bool {
	switch p {
	case CandlePartOpen, CandlePartHigh, CandlePartLow, CandlePartClose, CandlePartVolume:
		return true
	}
	return false
}

func (p CandlePart) String() string {
	return string(p)
}

func (p *CandlePart) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	part, err := ParseCandlePart(s)
	if err != nil {
		return err
	}

	*p = part
	return nil
}

func (p *CandlePart) UnmarshalYAML(unmarshal func(a interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	part, err := ParseCandlePart(s)
	if err != nil {
		return err
	}

	*p = part
	return nil
}
