package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/datatypes"

	"elhamas/internal/domain"
)

// Field setters used by the apply functions. A nil source leaves dst alone.

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// setOptStr stores a blank submission as NULL.
func setOptStr(dst **string, src *string) {
	if src == nil {
		return
	}
	if t := strings.TrimSpace(*src); t != "" {
		*dst = &t
		return
	}
	*dst = nil
}

// setList trims entries and drops blank ones; order is kept.
func setList(dst *datatypes.JSONSlice[string], src *[]string) {
	if src == nil {
		return
	}
	out := make([]string, 0, len(*src))
	for _, s := range *src {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	*dst = out
}

func setCurrency(dst *string, src *string) {
	if src == nil {
		return
	}
	if c := strings.ToUpper(strings.TrimSpace(*src)); c != "" {
		*dst = c
	}
}

func setPrice(dst *decimal.Decimal, src *float64) {
	if src != nil {
		*dst = decimal.NewFromFloat(*src).Round(2)
	}
}

func setNullPrice(dst *decimal.NullDecimal, src *float64) {
	if src != nil {
		*dst = decimal.NewNullDecimal(decimal.NewFromFloat(*src).Round(2))
	}
}

/********** slugs **********/

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases s, strips accents and joins ASCII words with dashes.
func Slugify(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if len(out) > 180 {
		out = strings.TrimSuffix(out[:180], "-")
	}
	return out
}

// uniqueSlug returns base, or base-N when another row already uses base.
// An empty base becomes a short random token.
func uniqueSlug[T interface{ Key() string }](ctx context.Context, st domain.Store[T], base, selfID string) (string, error) {
	if base == "" {
		base = uuid.NewString()[:8]
	}
	candidate := base
	for n := 2; n < 100; n++ {
		row, err := st.FindOne(ctx, domain.Filter{Where: map[string]any{"slug": candidate}})
		if errors.Is(err, domain.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if (*row).Key() == selfID {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return base + "-" + uuid.NewString()[:8], nil
}
