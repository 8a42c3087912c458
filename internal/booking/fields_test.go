package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsValidate(t *testing.T) {
	tests := []struct {
		name    string
		fields  Fields
		invalid []string
	}{
		{"valid", validFields(), nil},
		{"all missing", Fields{}, []string{"name", "phone", "service"}},
		{"unknown service", Fields{Name: "A", Phone: "1", Service: "Botox"}, []string{"service"}},
		{"missing phone", Fields{Name: "A", Service: "Orthodontics"}, []string{"phone"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrInvalidFields)
			assert.ElementsMatch(t, tt.invalid, verr.Fields)
		})
	}
}

func TestFieldsNormalize(t *testing.T) {
	f := Fields{Name: "  Asha ", Phone: "\t123 ", Service: " Root Canal"}.Normalize()
	assert.Equal(t, Fields{Name: "Asha", Phone: "123", Service: "Root Canal"}, f)
	assert.True(t, Fields{}.IsZero())
	assert.False(t, f.IsZero())
}

func TestServiceOptions(t *testing.T) {
	for _, opt := range ServiceOptions {
		assert.True(t, IsServiceOption(opt))
	}
	assert.False(t, IsServiceOption("Select service"))
}
