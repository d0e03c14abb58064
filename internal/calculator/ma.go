package calculator

import (
	"errors"

	"SignalDeck/internal/model"
)

// SMA computes the simple moving average of the last period values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// SMASeries returns the rolling SMA aligned with values. Points inside the
// warm-up window are absent, which the API sends as null.
func SMASeries(values []float64, period int) []model.Number {
	out := make([]model.Number, len(values))
	if period <= 0 {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = model.Num(sum / float64(period))
		}
	}
	return out
}

// smaOrAbsent wraps SMA as a Number that is absent when data is short.
func smaOrAbsent(values []float64, period int) model.Number {
	v, err := SMA(values, period)
	if err != nil {
		return model.Number{}
	}
	return model.Num(v)
}
