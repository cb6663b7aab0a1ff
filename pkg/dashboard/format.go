package dashboard

import "strconv"

// FormatValue renders a measurement without exponent notation or trailing
// zeros, so 7.2 stays "7.2" and 18 stays "18".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMeasurement joins a value with its unit. Unitless parameters such as
// pH render the bare value.
func FormatMeasurement(v float64, unit string) string {
	if unit == "" {
		return FormatValue(v)
	}
	return FormatValue(v) + " " + unit
}
