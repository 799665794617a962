// File: metaopt/type.go
package metaopt

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// String retrieves a resolved option as a string.
// Attempts conversion from common types if the stored value isn't already a string.
func (o *Options) String(name string) (string, error) {
	val, found := o.Get(name)
	if !found {
		return "", fmt.Errorf("option not resolved: %s", name)
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case error:
		return v.Error(), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for option %s", val, name)
	}
}

// Int64 retrieves a resolved option as an int64.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (o *Options) Int64(name string) (int64, error) {
	val, found := o.Get(name)
	if !found {
		return 0, fmt.Errorf("option not resolved: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for option %s is nil, cannot convert to int64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d (type %T) to int64 for option %s: overflow", u, val, name)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		} else {
			if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
				return int64(f), nil // Truncate
			}
			return 0, fmt.Errorf("cannot convert string %q to int64 for option %s: %w", s, name, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for option %s", val, name)
}

// Bool retrieves a resolved option as a bool.
// Attempts conversion from numeric types (0=false, non-zero=true) and parsable strings.
func (o *Options) Bool(name string) (bool, error) {
	val, found := o.Get(name)
	if !found {
		return false, fmt.Errorf("option not resolved: %s", name)
	}
	if val == nil {
		return false, fmt.Errorf("value for option %s is nil, cannot convert to bool", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		s := v.String()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		} else {
			return false, fmt.Errorf("cannot convert string %q to bool for option %s: %w", s, name, err)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for option %s", val, name)
}

// Float64 retrieves a resolved option as a float64.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (o *Options) Float64(name string) (float64, error) {
	val, found := o.Get(name)
	if !found {
		return 0.0, fmt.Errorf("option not resolved: %s", name)
	}
	if val == nil {
		return 0.0, fmt.Errorf("value for option %s is nil, cannot convert to float64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		s := v.String()
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		} else {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for option %s: %w", s, name, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for option %s", val, name)
}

// Duration retrieves a resolved option as a time.Duration.
// Accepts time.Duration values, parsable strings, and integer nanoseconds.
func (o *Options) Duration(name string) (time.Duration, error) {
	val, found := o.Get(name)
	if !found {
		return 0, fmt.Errorf("option not resolved: %s", name)
	}

	switch v := val.(type) {
	case time.Duration:
		return v, nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to duration for option %s: %w", v, name, err)
		}
		return d, nil
	case int:
		return time.Duration(v), nil
	case int64:
		return time.Duration(v), nil
	}

	return 0, fmt.Errorf("cannot convert type %T to duration for option %s", val, name)
}
