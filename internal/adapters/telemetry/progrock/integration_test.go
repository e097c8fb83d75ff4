package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassimport/internal/adapters/telemetry/progrock"
	"go.trai.ch/sassimport/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()
	require.NotNil(t, recorder)

	ctx := context.Background()

	// Two vertices with the same name must not collide.
	_, first := recorder.Record(ctx, "import foo")
	_, second := recorder.Record(ctx, "import foo")

	first.Log(domain.LogLevelDebug, "resolved /src/_foo.sass")
	first.Complete(nil)

	second.Cached()
	second.Complete(nil)

	_, failed := recorder.Record(ctx, "import missing")
	failed.Log(domain.LogLevelWarn, "Could not import `missing`")
	failed.Complete(errors.New("not found"))

	assert.NoError(t, recorder.Close())
}
