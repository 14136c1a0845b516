package codec

import (
	"fmt"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

// ParseBuy parses a .buy file's contents: a bare concatenation of
// single-letter booster codes, reusing the BOOSTER letter alphabet
// without the POINT suffix (a buy entry is just a type, no location).
func ParseBuy(s string) (core.Buy, error) {
	var buy core.Buy
	for _, r := range s {
		kind, ok := core.BoosterTypeFromByte(byte(r))
		if !ok {
			return nil, fmt.Errorf("codec: unknown buy code %q", r)
		}
		buy = append(buy, kind)
	}
	return buy, nil
}

// EmitBuy renders buy back into its wire form; the inverse of
// ParseBuy. Buy.String already implements it.
func EmitBuy(buy core.Buy) string { return buy.String() }
