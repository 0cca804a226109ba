package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vanrental/internal/utils"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := utils.ParseDate(s)
	require.NoError(t, err)
	return day
}
