package shared

import (
	"context"
	"reception/shared/cache"
	"reception/shared/constant"
	"reception/shared/failure"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

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

func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return res, nil
}

// ConvertParamToID parses a positive numeric path parameter.
func ConvertParamToID(value, field string) (int, error) {
	id, err := ConvertStringToInt(value)
	if err != nil || id <= 0 {
		return 0, failure.FieldError(field, "invalid "+field)
	}

	return id, nil
}

// BuildCacheKey joins the parts under the service-wide prefix: reception:<prefix>:<part>...
func BuildCacheKey(prefix string, parts ...string) string {
	elems := make([]string, 0, len(parts)+2)
	elems = append(elems, constant.CacheKeyPrefix, prefix)

	for _, part := range parts {
		if part == constant.Empty {
			part = "_"
		}

		elems = append(elems, part)
	}

	return strings.Join(elems, constant.CacheSeparator)
}

// InvalidateCaches drops every key stored under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	pattern := BuildCacheKey(prefix) + constant.Asterix

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate caches")
	}
}

// DigitsOnly strips everything that is not a decimal digit.
func DigitsOnly(value string) string {
	var builder strings.Builder

	for _, r := range value {
		if unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
