package shared_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
	"trekdesk/shared"
	"trekdesk/shared/cache/mocks"
	"trekdesk/shared/constant"
	"trekdesk/shared/dto"
	"trekdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid t string",
			input:    "t",
			expected: boolPtr(true),
		},
		{
			name:     "valid f string",
			input:    "f",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "valid F string",
			input:    "F",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
		{
			name:     "random string returns nil",
			input:    "random",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit equals total",
			total:    10,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
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
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
		NoTagField string `db:""`
	}

	tests := []struct {
		name     string
		data     interface{}
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				ID:         1,
				Name:       "John Doe",
				Email:      "john@example.com",
				EmptyField: "",
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
				NoTagField: "ignored",
			},
			expected: map[string]any{
				"id":    1,
				"name":  "John Doe",
				"email": "john@example.com",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			expected: map[string]any{},
		},
		{
			name: "struct with partial fields",
			data: TestStruct{
				Name: "Jane Doe",
			},
			expected: map[string]any{
				"name": "Jane Doe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if _, ok := result[constant.FieldUpdatedAt].(time.Time); !ok {
				t.Error("expected updated_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldUpdatedAt {
					continue
				}

				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type TestStructWithPointers struct {
		ID    *int    `db:"id"`
		Name  *string `db:"name"`
		Count *int    `db:"count"`
	}

	name := "John"
	count := 0

	data := TestStructWithPointers{
		ID:    intPtr(1),
		Name:  stringPtr(name),
		Count: &count,
	}

	result := shared.TransformFields(data)

	expectedFields := map[string]any{
		"id":    intPtr(1),
		"name":  stringPtr(name),
		"count": &count,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter by id",
			id:      123,
			fieldID: "trek_id",
			table:   "batches",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "trek_id",
						Value:    int64(123),
						Operator: dto.FilterOperatorEq,
						Table:    "batches",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      456,
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    int64(456),
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}

			where, args := result.GetWhereClause()
			if !strings.Contains(where, tt.fieldID+" = :"+tt.fieldID) {
				t.Errorf("unexpected where clause %s", where)
			}

			if args[tt.fieldID] != tt.id {
				t.Errorf("expected arg %d, got %v", tt.id, args[tt.fieldID])
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "treks", shared.BuildCacheKey("treks"))
	assert.Equal(t, "treks:detail:42", shared.BuildCacheKey("treks", "detail", 42))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "name", SortDir: dto.SortDirAsc}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq, Table: "treks"},
			dto.Filter{Field: "location", Value: "Uttarakhand", Operator: dto.FilterOperatorEq, Table: "treks"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("treks:all", params, filter)
	second := shared.BuildCacheKeyWithQuery("treks:all", params, filter)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "treks:all:2:10:name:ASC:"))
	assert.Contains(t, first, "location=Uttarakhand,status=active")

	params.Page = 3
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("treks:all", params, filter))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "treks*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "treks")

	redisCache.EXPECT().Clear(gomock.Any(), "bookings*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "bookings")
}

func TestParseID(t *testing.T) {
	id, err := shared.ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, input := range []string{"", "abc", "0", "-3", "9223372036854775808"} {
		_, err := shared.ParseID(input)
		assert.True(t, failure.IsKind(err, failure.KindValidation), input)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Best Treks of 2026", expected: "best-treks-of-2026"},
		{input: "  Packing -- the Basics!  ", expected: "packing-the-basics"},
		{input: "Kedarkantha: Winter & Snow", expected: "kedarkantha-winter-snow"},
		{input: "Über Höhen", expected: "über-höhen"},
		{input: "!!!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Slugify(tt.input))
		})
	}
}

// Helper functions for creating pointers
func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}
