package shared

import (
	"context"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"trekdesk/shared/cache"
	"trekdesk/shared/constant"
	"trekdesk/shared/dto"
	"trekdesk/shared/failure"
	"trekdesk/shared/timezone"
	"unicode"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ParseID parses a positive int64 path or query identifier.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid id: " + value) //nolint:wrapcheck
	}

	return id, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db-tagged fields of a struct into an update map
// and stamps updated_at.
func TransformFields(data interface{}) map[string]any {
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

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return FilterByField(fieldID, table, id)
}

func FilterByField(field, table string, value any) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts into a redis key.
func BuildCacheKey(prefix string, parts ...any) string {
	key := prefix

	for _, part := range parts {
		key += cacheKeySeparator + fmt.Sprint(part)
	}

	return key
}

// BuildCacheKeyWithQuery derives a stable key from paging params and a filter group.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	values := make([]string, 0, len(args))
	for _, name := range sortedKeys(args) {
		values = append(values, fmt.Sprintf("%s=%v", name, args[name]))
	}

	return BuildCacheKey(prefix,
		params.Page,
		params.Limit,
		params.SortBy,
		params.SortDir,
		strings.ReplaceAll(where, " ", ""),
		strings.Join(values, ","),
	)
}

// InvalidateCaches clears every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func sortedKeys(args map[string]any) []string {
	return slices.Sorted(maps.Keys(args))
}

// Slugify lowercases s and collapses every run of non letters and digits into a single dash.
func Slugify(s string) string {
	var b strings.Builder

	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)

			lastDash = false

			continue
		}

		if !lastDash {
			b.WriteRune('-')

			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
