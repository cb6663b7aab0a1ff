package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "18", FormatValue(18))
	assert.Equal(t, "17.5", FormatValue(17.5))
	assert.Equal(t, "0.05", FormatValue(0.05))
}

func TestFormatMeasurement(t *testing.T) {
	assert.Equal(t, "8.3 mg/l", FormatMeasurement(8.3, "mg/l"))
	assert.Equal(t, "6.5 °dH", FormatMeasurement(6.5, "°dH"))
	assert.Equal(t, "7.2", FormatMeasurement(7.2, ""))
}
