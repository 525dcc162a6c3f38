// Package site embeds the host page that carries the pricing cards.
package site

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed pricing.html
var pricingPage []byte

// PricingPage returns a fresh reader over the pricing section markup.
func PricingPage() io.Reader {
	return bytes.NewReader(pricingPage)
}
