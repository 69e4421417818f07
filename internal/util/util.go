// Package util contains small formatting helpers shared by the views.
package util

import (
	"fmt"
	"strconv"
)

// FormatCoordinate formats a latitude or longitude for display with six
// decimal places. An unset coordinate renders as "N/A".
func FormatCoordinate(value float64, ok bool) string {
	if !ok {
		return "N/A"
	}

	return strconv.FormatFloat(value, 'f', 6, 64)
}

// FormatPrice formats a price with two decimal places and a dollar sign.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
