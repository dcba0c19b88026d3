package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Size  int     `validate:"gte=1"`
	Limit int     `validate:"gte=0,ltefield=Size"`
	Rate  float64 `validate:"gte=0,lte=1"`
	Step  float64 `validate:"gt=0"`
	Name  string  `validate:"required"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		in        sample
		wantError string
	}{
		{"valid", sample{Size: 3, Limit: 2, Rate: 0.5, Step: 1, Name: "x"}, ""},
		{"size", sample{Size: 0, Rate: 0.5, Step: 1, Name: "x"}, "sample.Size: must be at least 1"},
		{"limit above size", sample{Size: 2, Limit: 3, Step: 1, Name: "x"}, "sample.Limit: must not exceed Size"},
		{"rate", sample{Size: 1, Rate: 1.5, Step: 1, Name: "x"}, "sample.Rate: must not exceed 1"},
		{"step", sample{Size: 1, Step: 0, Name: "x"}, "sample.Step: must be greater than 0"},
		{"name", sample{Size: 1, Step: 1}, "sample.Name: field is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.in)
			if tc.wantError == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantError)
			}
		})
	}
}
