package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestRequired(t *testing.T) {
	tests := []struct {
		value    any
		name     string
		wantFail bool
	}{
		{name: "present string", value: "hello", wantFail: false},
		{name: "empty string", value: "", wantFail: true},
		{name: "nil", value: nil, wantFail: true},
		{name: "nil float pointer", value: (*float64)(nil), wantFail: true},
		{name: "zero float pointer", value: floatPtr(0), wantFail: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Required("field")(tt.value)
			assert.Equal(t, tt.wantFail, msg != "")
		})
	}
}

func TestMinMax_Strings(t *testing.T) {
	assert.NotEmpty(t, Min("name", 6)("Chess"))
	assert.Empty(t, Min("name", 6)("Chess 2"))
	assert.NotEmpty(t, Max("name", 5)("too long value"))
	assert.Empty(t, Max("name", 80)("short"))

	// Absent values are owned by Required.
	assert.Empty(t, Min("name", 6)(""))
}

func TestMinMax_Numbers(t *testing.T) {
	assert.NotEmpty(t, Min("cost", 0)(floatPtr(-1)))
	assert.Empty(t, Min("cost", 0)(floatPtr(0)))
	assert.Empty(t, Min("cost", 0)(floatPtr(59.99)))
	assert.NotEmpty(t, Max("cost", 100)(floatPtr(101)))
	assert.Empty(t, Max("cost", 100)(floatPtr(100)))
}

func TestNumeric(t *testing.T) {
	assert.Empty(t, Numeric("cost")(floatPtr(3.5)))
	assert.Empty(t, Numeric("cost")(42))
	assert.NotEmpty(t, Numeric("cost")("not a number"))
	assert.Empty(t, Numeric("cost")(nil))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantFail bool
	}{
		{name: "valid", value: "john@example.com", wantFail: false},
		{name: "subdomain", value: "a@mail.example.co.uk", wantFail: false},
		{name: "missing at", value: "john.example.com", wantFail: true},
		{name: "missing domain dot", value: "john@example", wantFail: true},
		{name: "spaces", value: "john doe@example.com", wantFail: true},
		{name: "double at", value: "john@@example.com", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Email("email")(tt.value)
			assert.Equal(t, tt.wantFail, msg != "", "value %q", tt.value)
		})
	}
}

func TestConfirmed(t *testing.T) {
	assert.Empty(t, Confirmed("password", "secret123")("secret123"))
	assert.NotEmpty(t, Confirmed("password", "different")("secret123"))
	// Empty confirmation is not a mismatch; Required on the confirmation
	// field enforces presence where an endpoint wants it mandatory.
	assert.Empty(t, Confirmed("password", "")("secret123"))
}

func TestUnique(t *testing.T) {
	taken := func(v string) bool { return v == "taken@example.com" }

	assert.NotEmpty(t, Unique("email", taken)("taken@example.com"))
	assert.Empty(t, Unique("email", taken)("free@example.com"))
	assert.Empty(t, Unique("email", taken)(""))
}

func TestCheck_CollectsAllViolations(t *testing.T) {
	errs := Check(
		Field{Name: "name", Value: "", Rules: []Rule{
			Required("name"),
			Min("name", 6),
		}},
		Field{Name: "cost", Value: floatPtr(-1), Rules: []Rule{
			Required("cost"),
			Numeric("cost"),
			Min("cost", 0),
		}},
		Field{Name: "description", Value: "long enough description", Rules: []Rule{
			Required("description"),
			Min("description", 10),
		}},
	)

	require.NotNil(t, errs)
	// Both failing fields are reported together, the passing one is not.
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "cost")
	assert.NotContains(t, errs, "description")
	assert.Len(t, errs["name"], 1)
	assert.Len(t, errs["cost"], 1)
}

func TestCheck_PassingInput(t *testing.T) {
	errs := Check(
		Field{Name: "name", Value: "John Doe", Rules: []Rule{
			Required("name"),
			String("name"),
			Min("name", 4),
			Max("name", 80),
		}},
	)
	assert.Nil(t, errs)
}

func TestCheck_FieldOrderPreservedWithinField(t *testing.T) {
	errs := Check(
		Field{Name: "name", Value: 42, Rules: []Rule{
			Required("name"),
			String("name"),
		}},
	)
	require.NotNil(t, errs)
	require.Len(t, errs["name"], 1)
	assert.Equal(t, "The name field must be a string.", errs["name"][0])
}
