package logging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

const clipLimit = 240

// leadingKeys print before the alphabetical remainder.
var leadingKeys = []string{"component", "message", "section", "theme", "method", "path", "status"}

func Truncate(value string) string {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	if value == "" {
		return "<empty>"
	}
	if len(value) > clipLimit {
		return value[:clipLimit] + "..."
	}
	return value
}

func FormatEventLine(event Event) string {
	ts := event.Time.Format("15:04:05")
	level := strings.ToUpper(event.Level.String())
	fields := ""
	if len(event.Fields) > 0 {
		keys := orderedFieldKeys(event.Fields)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+"="+formatFieldValue(event.Fields[key]))
		}
		fields = " " + strings.Join(parts, " ")
	}
	return fmt.Sprintf("%s [%s] %s%s\n", ts, level, event.Message, fields)
}

func formatFieldValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return quoteIfNeeded(Truncate(v))
	case error:
		return quoteIfNeeded(Truncate(v.Error()))
	case time.Duration:
		return v.Round(time.Microsecond).String()
	case slog.Level:
		return v.String()
	case fmt.Stringer:
		return quoteIfNeeded(v.String())
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		if payload, err := json.Marshal(value); err == nil {
			return string(payload)
		}
	}
	return fmt.Sprintf("%v", value)
}

func quoteIfNeeded(value string) string {
	if value == "" || strings.ContainsAny(value, " \t=\"") {
		return strconv.Quote(value)
	}
	return value
}

func orderedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for _, key := range leadingKeys {
		if _, ok := fields[key]; ok {
			keys = append(keys, key)
		}
	}
	rest := make([]string, 0, len(fields))
	for key := range fields {
		if !isLeadingKey(key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func isLeadingKey(key string) bool {
	for _, k := range leadingKeys {
		if k == key {
			return true
		}
	}
	return false
}
