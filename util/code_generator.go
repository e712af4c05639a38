// util/code_generator.go

package util

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
)

// MaxCodeAttempts bounds the suffix search of GenerateUniqueCode.
const MaxCodeAttempts = 50

// Slugify lowercases s, collapses every run of characters outside [a-z0-9] into a single
// dash and trims dashes from both ends.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// CodeBase returns the slug of name, or a timestamp plus random token when the slug is empty.
func CodeBase(name string) string {
	if base := Slugify(name); base != "" {
		return base
	}
	return fmt.Sprintf("%d-%s", time.Now().Unix(), strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// CodeCandidate is base for attempt 0, then base-1, base-2, ...
func CodeCandidate(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, attempt)
}

// GenerateUniqueCode walks the candidates of base, skipping codes isTaken reports, and hands
// the first free one to insert. The store's unique constraint has the final say: a conflict
// from insert moves on to the next candidate once the code shows up as taken. Gives up with
// ErrCodeExhausted.
func GenerateUniqueCode(
	ctx context.Context,
	base string,
	isTaken func(ctx context.Context, code string) (bool, error),
	insert func(ctx context.Context, code string) error,
) (string, error) {
	for attempt := 0; attempt < MaxCodeAttempts; attempt++ {
		code := CodeCandidate(base, attempt)
		taken, err := isTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if taken {
			continue
		}
		err = insert(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, navguard_errors.ErrConflict) {
			return "", err
		}
		// The conflict may come from another unique column, such as the name.
		if taken, terr := isTaken(ctx, code); terr != nil {
			return "", terr
		} else if !taken {
			return "", err
		}
		logger.Debug("Code collided on insert, retrying", zap.String("code", code), zap.Int("attempt", attempt))
	}
	logger.Warn("Exhausted code candidates", zap.String("base", base), zap.Int("attempts", MaxCodeAttempts))
	return "", navguard_errors.ErrCodeExhausted
}
