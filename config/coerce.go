package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are tried in order by AsTime on string values.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// FormatNumber renders v the way the writer does: the shortest decimal that
// round-trips, without an exponent for magnitudes in [1e-6, 1e15), and
// "null" for NaN.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "null"
	case math.IsInf(v, 1):
		return "1e999"
	case math.IsInf(v, -1):
		return "-1e999"
	}
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-6 && abs < 1e15) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatTruncated renders v with 4, 3 or 2 decimals for values under 0.1,
// under 1 and above respectively. NaN and infinities render as in
// FormatNumber.
func FormatTruncated(v float64) string {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return FormatNumber(v)
	case v < 0.1:
		return strconv.FormatFloat(v, 'f', 4, 64)
	case v < 1:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// FormatRaw renders an opaque value as 0x followed by 16 hex digits.
func FormatRaw(v RawValue) string {
	return fmt.Sprintf("0x%016x", uint64(v))
}

// AsBool converts h to a boolean. Null is false, numbers and raw values are
// true when non-zero, containers when they have children, and strings when
// they spell true or false in any case. Anything else returns def.
func (h Handle) AsBool(def bool) bool {
	n := h.node()
	if n == nil {
		return def
	}
	switch v := n.value.(type) {
	case boolPayload:
		return bool(v)
	case numberPayload:
		if math.IsNaN(float64(v)) {
			return def
		}
		return v != 0
	case rawPayload:
		return v != 0
	case countPayload:
		return v > 0 && n.child != none
	case stringPayload:
		s := h.store.strings.Resolve(v.symbol())
		switch {
		case strings.EqualFold(s, "true"):
			return true
		case strings.EqualFold(s, "false"):
			return false
		}
		return def
	}
	if n.kind == Nil {
		return false
	}
	return def
}

// AsNumber converts h to a float64. True is 1, null and false are 0, raw
// values give their bit pattern as an integer, arrays their length and
// strings their parsed value. Objects, undefined values and unparsable
// strings return def.
func (h Handle) AsNumber(def float64) float64 {
	n := h.node()
	if n == nil {
		return def
	}
	switch v := n.value.(type) {
	case numberPayload:
		return float64(v)
	case boolPayload:
		if v {
			return 1
		}
		return 0
	case rawPayload:
		return float64(uint64(v))
	case countPayload:
		if n.kind == Array {
			return float64(v)
		}
		return def
	case stringPayload:
		f, err := strconv.ParseFloat(strings.TrimSpace(h.store.strings.Resolve(v.symbol())), 64)
		if err != nil {
			return def
		}
		return f
	}
	if n.kind == Nil {
		return 0
	}
	return def
}

// AsInt converts h like AsNumber and truncates toward zero. NaN and values
// that do not convert return def.
func (h Handle) AsInt(def int64) int64 {
	f := h.AsNumber(math.NaN())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int64(f)
}

// AsString converts a scalar to text. Numbers use FormatNumber (NaN is
// "null"), booleans spell true/false and raw values use FormatRaw. Null,
// undefined values and containers return def.
func (h Handle) AsString(def string) string {
	n := h.node()
	if n == nil {
		return def
	}
	switch v := n.value.(type) {
	case stringPayload:
		return h.store.strings.Resolve(v.symbol())
	case numberPayload:
		return FormatNumber(float64(v))
	case boolPayload:
		return strconv.FormatBool(bool(v))
	case rawPayload:
		return FormatRaw(RawValue(v))
	}
	return def
}

// AsTime converts numbers (Unix seconds) and date strings to a time.
// Anything else returns def.
func (h Handle) AsTime(def time.Time) time.Time {
	n := h.node()
	if n == nil {
		return def
	}
	switch v := n.value.(type) {
	case numberPayload:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
	case stringPayload:
		s := strings.TrimSpace(h.store.strings.Resolve(v.symbol()))
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return def
}

// AsRaw returns the opaque value of a raw node. Non-negative numbers convert
// to their integer value and strings in 0x hex form are parsed; anything
// else returns def.
func (h Handle) AsRaw(def RawValue) RawValue {
	n := h.node()
	if n == nil {
		return def
	}
	switch v := n.value.(type) {
	case rawPayload:
		return RawValue(v)
	case numberPayload:
		if f := float64(v); f >= 0 && f <= math.MaxUint64 {
			return RawValue(uint64(f))
		}
	case stringPayload:
		s := h.store.strings.Resolve(v.symbol())
		if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
			if u, err := strconv.ParseUint(hex, 16, 64); err == nil {
				return RawValue(u)
			}
		}
	}
	return def
}
