package shared

import (
	"cafe/shared/constant"
	"cafe/shared/dto"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var truthyValues = []string{"true", "1", "t", "on", "yes", "y"}

// ParseTruthy reports whether a form value switches a flag on. Only the exact (case
// insensitive, trimmed) values in truthyValues count; "false", "0", "" and absent fields are false.
func ParseTruthy(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))

	for _, truthy := range truthyValues {
		if value == truthy {
			return true
		}
	}

	return false
}

func ConvertStringToInt(value string) (int64, error) {
	intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		log.Error().Err(err).Str("value", value).Msg("failed to convert string to int")

		return 0, fmt.Errorf("failed to convert %q to int: %w", value, err)
	}

	return intValue, nil
}

// TransformFields converts the non-zero, db-tagged fields of a struct into a column map
// suitable for Repository.Update.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts with ':' separators.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// IndexByPosition keys items by their 1-based position ("1".."N").
func IndexByPosition[T any](items []T) map[string]T {
	indexed := make(map[string]T, len(items))

	for i, item := range items {
		indexed[strconv.Itoa(i+1)] = item
	}

	return indexed
}

// ContentTypeIs reports whether a Content-Type header carries the given media type.
func ContentTypeIs(header, mediaType string) bool {
	if header == constant.Empty {
		return false
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(header)), mediaType)
}
