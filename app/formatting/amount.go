package formatting

import "fmt"

// FormatAmount renders a monetary value with the rand prefix and fixed two
// decimals, e.g. "R 500.00".
func FormatAmount(v float64) string {
	return fmt.Sprintf("R %.2f", v)
}
