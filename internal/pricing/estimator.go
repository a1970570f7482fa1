// Package pricing computes quote estimates for customized socks.
package pricing

import (
	"errors"
	"fmt"
)

// LogoPosition is where the club logo is knitted on the sock.
type LogoPosition string

const (
	LogoAnkle LogoPosition = "ankle"
	LogoCalf  LogoPosition = "calf"
	LogoBoth  LogoPosition = "both"
)

// ValidLogoPosition reports whether p is one of the closed set of positions.
func ValidLogoPosition(p LogoPosition) bool {
	switch p {
	case LogoAnkle, LogoCalf, LogoBoth:
		return true
	default:
		return false
	}
}

// Per-pair pricing policy in AUD cents. Fixed, not configurable.
const (
	basePriceCents        = 2500
	gripSoleUpchargeCents = 800
	logoBothCents         = 500
	logoSingleCents       = 300
)

var (
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidLogoPosition = errors.New("logo position must be ankle, calf, or both")
)

// Options are the pricing-relevant fields of a customization.
type Options struct {
	HasGripSole  bool
	LogoPosition LogoPosition
	Quantity     int
}

// Estimate returns the quote total in AUD cents for the given options.
func Estimate(opts Options) (int, error) {
	if opts.Quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	if !ValidLogoPosition(opts.LogoPosition) {
		return 0, ErrInvalidLogoPosition
	}

	perPair := basePriceCents
	if opts.HasGripSole {
		perPair += gripSoleUpchargeCents
	}
	if opts.LogoPosition == LogoBoth {
		perPair += logoBothCents
	} else {
		perPair += logoSingleCents
	}

	return perPair * opts.Quantity, nil
}

// FormatAUD renders cents as a display price, e.g. 76000 -> "$760.00".
func FormatAUD(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
