package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	color.NoColor = true
	t.Setenv("SHORTLIST_STORAGE_DRIVER", "memory")
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, run(ctx, "", []string{"rubric"}, &buf))
	assert.Contains(t, buf.String(), "Rubric")

	buf.Reset()
	require.NoError(t, run(ctx, "", []string{"rank"}, &buf))
	assert.Contains(t, buf.String(), "No candidates yet.")

	assert.Error(t, run(ctx, "", nil, &buf))
	assert.Error(t, run(ctx, "", []string{"bogus"}, &buf))
	assert.Error(t, run(ctx, "", []string{"explain"}, &buf))
	assert.Error(t, run(ctx, "", []string{"explain", "x"}, &buf))
	assert.Error(t, run(ctx, "", []string{"explain", "1"}, &buf))
}
