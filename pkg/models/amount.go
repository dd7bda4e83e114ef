package models

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Amount is a positive money value held at exactly two decimal places.
type Amount struct {
	decimal.Decimal
}

// ParseAmount parses s into an Amount, rounding to two decimal places.
// Zero, negative and non-numeric inputs are rejected.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: amount %q is not a number", ErrValidation, s)
	}
	d = d.Round(2)
	if !d.IsPositive() {
		return Amount{}, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	return Amount{Decimal: d}, nil
}

// MustParseAmount is ParseAmount for constants in tests and fixtures.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String formats the amount with exactly two decimals.
func (a Amount) String() string {
	return a.StringFixed(2)
}

// MarshalJSON encodes the amount as a two-decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("%w: amount must be a string or number", ErrValidation)
		}
		s = n.String()
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalDynamoDBAttributeValue stores the amount as a DynamoDB number.
func (a Amount) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.String()}, nil
}

// UnmarshalDynamoDBAttributeValue reads a number (or string) attribute.
func (a *Amount) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	default:
		return fmt.Errorf("unexpected attribute type %T for amount", av)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("failed to parse stored amount %q: %w", raw, err)
	}
	a.Decimal = d.Round(2)
	return nil
}

// Sum adds up amounts. The zero value of the result is 0.00.
func Sum(amounts ...Amount) Amount {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Decimal)
	}
	return Amount{Decimal: total}
}
