package util

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	navguard_errors "github.com/dev-mohitbeniwal/navguard/errors"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "acme-corp"},
		{"  Sales & Marketing!! ", "sales-marketing"},
		{"R&D--Team_2", "r-d-team-2"},
		{"already-a-slug", "already-a-slug"},
		{"管理员", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestCodeBase_FallsBackWhenSlugEmpty(t *testing.T) {
	assert.Equal(t, "acme", CodeBase("ACME"))
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{8}$`), CodeBase("!!!"))
}

func TestGenerateUniqueCode_SkipsTakenCodes(t *testing.T) {
	taken := map[string]bool{"acme": true, "acme-1": true}
	var inserted string

	code, err := GenerateUniqueCode(context.Background(), "acme",
		func(_ context.Context, c string) (bool, error) { return taken[c], nil },
		func(_ context.Context, c string) error { inserted = c; return nil },
	)

	require.NoError(t, err)
	assert.Equal(t, "acme-2", code)
	assert.Equal(t, "acme-2", inserted)
}

func TestGenerateUniqueCode_RetriesOnInsertConflict(t *testing.T) {
	// a concurrent writer takes "acme" between the check and the insert
	calls := 0
	racedAway := false
	code, err := GenerateUniqueCode(context.Background(), "acme",
		func(_ context.Context, c string) (bool, error) { return c == "acme" && racedAway, nil },
		func(_ context.Context, c string) error {
			calls++
			if c == "acme" {
				racedAway = true
				return navguard_errors.ErrOrganizationConflict
			}
			return nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "acme-1", code)
	assert.Equal(t, 2, calls)
}

func TestGenerateUniqueCode_ConflictOnOtherColumnIsFinal(t *testing.T) {
	calls := 0
	_, err := GenerateUniqueCode(context.Background(), "acme",
		func(context.Context, string) (bool, error) { return false, nil },
		func(context.Context, string) error {
			calls++
			return navguard_errors.ErrRoleConflict
		},
	)

	assert.ErrorIs(t, err, navguard_errors.ErrRoleConflict)
	assert.Equal(t, 1, calls)
}

func TestGenerateUniqueCode_StoreErrorIsFatal(t *testing.T) {
	boom := errors.New("boom")
	_, err := GenerateUniqueCode(context.Background(), "acme",
		func(context.Context, string) (bool, error) { return false, nil },
		func(context.Context, string) error { return boom },
	)
	assert.ErrorIs(t, err, boom)
}

func TestGenerateUniqueCode_Exhausted(t *testing.T) {
	_, err := GenerateUniqueCode(context.Background(), "acme",
		func(context.Context, string) (bool, error) { return true, nil },
		func(context.Context, string) error { return nil },
	)
	assert.ErrorIs(t, err, navguard_errors.ErrCodeExhausted)
	assert.ErrorIs(t, err, navguard_errors.ErrConflict)
}
