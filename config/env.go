// Package config loads configuration structs from YAML files and
// environment variables.
//
// Environment variable names follow the pattern:
//
//	{Prefix}_{SECTION}_{FIELD}
//
// Nested struct fields add a segment; embedded structs are flattened.
// A field is named after its yaml tag when it has one and after its Go
// name in UPPER_SNAKE_CASE otherwise:
//
//	BufferSize int `yaml:"buffer_size"` → BUFFER_SIZE
//	MaxWait    time.Duration            → MAX_WAIT
//
// Fields tagged yaml:"-" are skipped, as are fields of unsupported types.
// Supported are string, bool, int*, uint*, float* and time.Duration.
//
// Example with stream.Config and section "stream":
//
//	RXCHAIN_STREAM_CONCURRENCY=4
//	RXCHAIN_STREAM_BUFFER_SIZE=16
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DefaultPrefix is the environment variable prefix used when Loader.Prefix
// is empty.
const DefaultPrefix = "RXCHAIN"

var durationType = reflect.TypeFor[time.Duration]()

// Loader reads environment variables into configuration structs.
type Loader struct {
	// Prefix for environment variable names. Default: DefaultPrefix.
	Prefix string

	// lookup overrides os.LookupEnv in tests.
	lookup func(string) (string, bool)
}

func (l Loader) prefix(section string) string {
	p := l.Prefix
	if p == "" {
		p = DefaultPrefix
	}
	return p + "_" + normalizeSection(section)
}

func (l Loader) lookupEnv(key string) (string, bool) {
	if l.lookup != nil {
		return l.lookup(key)
	}
	return os.LookupEnv(key)
}

// Load overlays the environment variables of section onto the struct dst
// points to. Fields without a variable keep their value, so Load is applied
// after defaults and LoadFile.
func (l Loader) Load(section string, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: dst must be a pointer to a struct, got %T", dst)
	}
	return walk(l.prefix(section), v.Elem(), func(key string, fv reflect.Value) error {
		raw, ok := l.lookupEnv(key)
		if !ok {
			return nil
		}
		if err := set(fv, raw); err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		return nil
	})
}

// Keys returns the environment variable names Load reads for section, in
// field order. dst may be a struct or a pointer to one.
func (l Loader) Keys(section string, dst any) []string {
	t := reflect.TypeOf(dst)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var keys []string
	_ = walk(l.prefix(section), reflect.New(t).Elem(), func(key string, _ reflect.Value) error {
		keys = append(keys, key)
		return nil
	})
	return keys
}

// Load overlays environment variables using the default Loader.
func Load(section string, dst any) error {
	return Loader{}.Load(section, dst)
}

// Keys lists environment variable names using the default Loader.
func Keys(section string, dst any) []string {
	return Loader{}.Keys(section, dst)
}

// walk calls visit for every settable field of the struct v with the
// variable name it maps to.
func walk(prefix string, v reflect.Value, visit func(key string, fv reflect.Value) error) error {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)

		name, skip := fieldName(field)
		if skip {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := walk(prefix, fv, visit); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() {
			continue
		}

		key := prefix + "_" + name
		switch {
		case field.Type == durationType || isSupportedKind(field.Type.Kind()):
			if err := visit(key, fv); err != nil {
				return err
			}
		case field.Type.Kind() == reflect.Struct:
			if err := walk(key, fv, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

func fieldName(field reflect.StructField) (string, bool) {
	tag, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	switch tag {
	case "-":
		return "", true
	case "":
		return toUpperSnake(field.Name), false
	}
	return normalizeSection(tag), false
}

func isSupportedKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func set(v reflect.Value, raw string) error {
	if v.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	}
	return nil
}

// normalizeSection uppercases letters, maps '-', ' ' and '_' to '_' and
// drops everything else.
func normalizeSection(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(unicode.ToUpper(r))
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// toUpperSnake converts a Go CamelCase field name to UPPER_SNAKE_CASE.
//
//	BufferSize → BUFFER_SIZE
//	HTTPClient → HTTP_CLIENT
func toUpperSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteRune('_')
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
