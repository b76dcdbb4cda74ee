package shared_test

import (
	"cafe/shared"
	"cafe/shared/dto"
	"reflect"
	"testing"
)

func TestParseTruthy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "empty string is false", input: "", expected: false},
		{name: "true", input: "true", expected: true},
		{name: "TRUE", input: "TRUE", expected: true},
		{name: "padded true", input: "  True ", expected: true},
		{name: "1", input: "1", expected: true},
		{name: "t", input: "t", expected: true},
		{name: "on", input: "on", expected: true},
		{name: "yes", input: "yes", expected: true},
		{name: "y", input: "Y", expected: true},
		{name: "literal false is false", input: "false", expected: false},
		{name: "0 is false", input: "0", expected: false},
		{name: "off is false", input: "off", expected: false},
		{name: "random string is false", input: "random", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ParseTruthy(tt.input)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "valid number", input: "42", expected: 42},
		{name: "padded number", input: " 7 ", expected: 7},
		{name: "negative number", input: "-3", expected: -3},
		{name: "empty string", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		ID         int    `db:"id"`
		Name       string `db:"name"`
		Price      string `db:"coffee_price"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
	}

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				ID:         1,
				Name:       "Blue Cup",
				Price:      "£2.50",
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
			},
			expected: map[string]any{
				"id":           1,
				"name":         "Blue Cup",
				"coffee_price": "£2.50",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			expected: map[string]any{},
		},
		{
			name:     "struct with partial fields",
			data:     TestStruct{Price: "£3.00"},
			expected: map[string]any{"coffee_price": "£3.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(7), "id", "cafes")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    int64(7),
				Operator: dto.FilterOperatorEq,
				Table:    "cafes",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}

	where, args := result.GetWhereClause()
	if where != "(cafes.id = :id)" {
		t.Errorf("expected where clause to be '(cafes.id = :id)', got %s", where)
	}

	if args["id"] != int64(7) {
		t.Errorf("expected id arg to be 7, got %v", args["id"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("limiter"); key != "limiter" {
		t.Errorf("expected 'limiter', got %s", key)
	}

	if key := shared.BuildCacheKey("limiter", "127.0.0.1", "curl"); key != "limiter:127.0.0.1:curl" {
		t.Errorf("expected 'limiter:127.0.0.1:curl', got %s", key)
	}
}

func TestIndexByPosition(t *testing.T) {
	result := shared.IndexByPosition([]string{"a", "b", "c"})

	expected := map[string]string{"1": "a", "2": "b", "3": "c"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}

	empty := shared.IndexByPosition([]string{})
	if len(empty) != 0 {
		t.Errorf("expected empty map, got %v", empty)
	}
}

func TestContentTypeIs(t *testing.T) {
	if !shared.ContentTypeIs("multipart/form-data; boundary=xyz", "multipart/form-data") {
		t.Error("expected multipart content type to match")
	}

	if shared.ContentTypeIs("application/x-www-form-urlencoded", "multipart/form-data") {
		t.Error("expected urlencoded content type not to match multipart")
	}

	if shared.ContentTypeIs("", "multipart/form-data") {
		t.Error("expected empty header not to match")
	}
}
