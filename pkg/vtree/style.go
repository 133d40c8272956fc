package vtree

import (
	"fmt"
	"strconv"
)

// lengthProps are the style properties whose bare numeric values are
// interpreted as pixel lengths.
var lengthProps = map[string]bool{
	"width":          true,
	"height":         true,
	"min-width":      true,
	"min-height":     true,
	"max-width":      true,
	"max-height":     true,
	"top":            true,
	"left":           true,
	"right":          true,
	"bottom":         true,
	"margin":         true,
	"margin-top":     true,
	"margin-right":   true,
	"margin-bottom":  true,
	"margin-left":    true,
	"padding":        true,
	"padding-top":    true,
	"padding-right":  true,
	"padding-bottom": true,
	"padding-left":   true,
	"font-size":      true,
	"border-width":   true,
	"border-radius":  true,
	"letter-spacing": true,
	"gap":            true,
}

// IsLengthProperty reports whether numeric values for the style property
// are auto-suffixed with a pixel unit.
func IsLengthProperty(name string) bool {
	return lengthProps[name]
}

// styleValue converts a style value to its serialized string form.
// Numeric values on known length properties gain a "px" suffix; every
// other value passes through in its default string form.
func styleValue(name string, value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return suffix(strconv.Itoa(v), name)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return suffix(fmt.Sprint(v), name)
	case float32:
		return suffix(strconv.FormatFloat(float64(v), 'f', -1, 32), name)
	case float64:
		return suffix(strconv.FormatFloat(v, 'f', -1, 64), name)
	default:
		return fmt.Sprint(v)
	}
}

func suffix(s, name string) string {
	if lengthProps[name] {
		return s + "px"
	}
	return s
}
