package money

import "github.com/leekchan/accounting"

var acc = accounting.Accounting{
  Symbol:    "$",
  Precision: 2,
  Thousand:  ",",
  Decimal:   ".",
}

// String formats an amount given in minor units (cents).
func String(value int64) string {
  return acc.FormatMoney(float64(value) / 100)
}
