package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alamin4D/battle-server-website/internal/repositories/repotest"
)

func TestRepositoryManager_Conformance(t *testing.T) {
	rm := NewRepositoryManager()
	require.NoError(t, rm.Initialize(context.Background()))
	require.NoError(t, rm.HealthCheck(context.Background()))

	repotest.Run(t, rm.GetRepository())
}
