package query

import (
	"errors"
	"testing"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want Condition
	}{
		{
			"greater with float",
			"rating>4.5",
			Condition{Column: "rating", Op: OpGreater, Value: FloatValue(4.5)},
		},
		{
			"less with integer",
			"price<1000",
			Condition{Column: "price", Op: OpLess, Value: IntValue(1000)},
		},
		{
			"equal with text value",
			"brand=apple",
			Condition{Column: "brand", Op: OpEqual, Value: StringValue("apple")},
		},
		{
			"equal with integer value",
			"price=999",
			Condition{Column: "price", Op: OpEqual, Value: IntValue(999)},
		},
		{
			"column kept verbatim with whitespace",
			" rating >4.5",
			Condition{Column: " rating ", Op: OpGreater, Value: FloatValue(4.5)},
		},
		{
			"priority picks greater before equal",
			"a=b>c",
			Condition{Column: "a=b", Op: OpGreater, Value: StringValue("c")},
		},
		{
			"priority picks less before equal",
			"a=b<c",
			Condition{Column: "a=b", Op: OpLess, Value: StringValue("c")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCondition(tt.expr)
			if err != nil {
				t.Fatalf("ParseCondition(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ParseCondition(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseCondition_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"no operator", "invalid_condition"},
		{"empty expression", ""},
		{"operator appears twice", "a>b>c"},
		{"empty right side", "rating>"},
		{"empty left side", ">4.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCondition(tt.expr)
			if err == nil {
				t.Fatalf("ParseCondition(%q) expected error, got nil", tt.expr)
			}
			if !errors.Is(err, ErrConditionFormat) {
				t.Errorf("ParseCondition(%q) error = %v, want ErrConditionFormat", tt.expr, err)
			}
		})
	}
}
