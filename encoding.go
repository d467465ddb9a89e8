package fraction

import (
	"database/sql/driver"
	"fmt"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Strings such as "1/2", "-3" or "0.75" are parsed with [Parse].
// JSON numbers are accepted too: 7 becomes 7/1 and 0.25 becomes 1/4.
// A JSON null leaves the fraction unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (f *Fraction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	var err error
	*f, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Fraction{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted "num/den" string, never a number,
// so that unreduced fractions such as "2/4" survive a round trip.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (f Fraction) MarshalJSON() ([]byte, error) {
	s := f.String()
	data := make([]byte, 0, len(s)+2)
	data = append(data, '"')
	data = append(data, s...)
	data = append(data, '"')
	return data, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The text is parsed with [Parse]; a zero denominator is rejected.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Fraction{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// It appends the "num/den" form of the fraction to text.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (f Fraction) AppendText(text []byte) ([]byte, error) {
	return append(text, f.String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// The result is the "num/den" form returned by [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// BSON strings are parsed with [Parse], BSON 32-bit and 64-bit integers
// become n/1, and a BSON null leaves the fraction unchanged.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (f *Fraction) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*f, err = parseBSONString(data)
	case 10:
		// null, do nothing
	case 16:
		var n int64
		n, err = parseBSONInt(data, 4)
		*f = newFractionUnsafe(n, 1)
	case 18:
		var n int64
		n, err = parseBSONInt(data, 8)
		*f = newFractionUnsafe(n, 1)
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Fraction{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON string in the "num/den" form,
// even for whole numbers, so the denominator is never lost.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (f Fraction) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, f.bsonString(), nil
}

// parseBSONString parses a BSON string to a fraction.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Fraction, error) {
	if len(data) < 4 {
		return Fraction{}, fmt.Errorf("invalid data length %v", len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Fraction{}, fmt.Errorf("invalid string length %v", l)
	}
	if data[l+4-1] != 0 {
		return Fraction{}, fmt.Errorf("invalid null terminator %v", data[l+4-1])
	}
	return Parse(string(data[4 : l+4-1]))
}

// parseBSONInt decodes a little-endian BSON int32 (size 4) or int64 (size 8).
func parseBSONInt(data []byte, size int) (int64, error) {
	if len(data) != size {
		return 0, fmt.Errorf("invalid data length %v", len(data))
	}
	var u uint64
	for i := size - 1; i >= 0; i-- {
		u = u<<8 | uint64(data[i])
	}
	if size == 4 {
		return int64(int32(uint32(u))), nil //nolint:gosec
	}
	return int64(u), nil //nolint:gosec
}

// bsonString returns the BSON string representation of the fraction.
// The byte order of the result is little-endian.
func (f Fraction) bsonString() []byte {
	s := f.String()
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
// Text columns are parsed with [Parse] and integer columns become n/1.
// A SQL NULL is an error; scan nullable columns into [NullFraction].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (f *Fraction) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*f, err = Parse(value)
	case []byte:
		*f, err = Parse(string(value))
	case int64:
		*f = newFractionUnsafe(value, 1)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Fraction{}, NullFraction{}, Fraction{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Fraction{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns a "num/den" string, so fractions are stored in text
// columns without reduction.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction) Value() (driver.Value, error) {
	return f.String(), nil
}

// NullFraction represents a fraction column or field that can be null.
// Valid is false for null, in which case Fraction is 0/1.
// Its zero value is null.
// NullFraction is not thread-safe.
type NullFraction struct {
	Fraction Fraction
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// A SQL NULL resets n to null; other values are handled by [Fraction.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullFraction) Scan(value any) error {
	if value == nil {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Fraction.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// It returns nil for null and the "num/den" string otherwise.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullFraction) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Fraction.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON null resets n to null; other values are handled by
// [Fraction.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullFraction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Fraction.UnmarshalJSON(data)
}

// MarshalJSON implements the [json.Marshaler] interface.
// It returns null or the quoted "num/den" string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullFraction) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Fraction.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// A BSON null resets n to null; other values are handled by
// [Fraction.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullFraction) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == 10 {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Fraction.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// It returns a BSON null or the BSON string of the fraction.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullFraction) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Fraction.MarshalBSONValue()
}
