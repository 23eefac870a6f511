package slogx_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ecohubks/ecohub/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestWithStampsContextualAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := slogx.WithContext(context.Background(), logger)
	ctx = slogx.With(ctx, "user_id", "01ARZ3NDEKTSV4RRFFQ69G5FAV")

	slogx.FromContext(ctx).Info("profile updated")
	require.Contains(t, buf.String(), "user_id=01ARZ3NDEKTSV4RRFFQ69G5FAV")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	require.NotNil(t, slogx.FromContext(context.Background()))
}
