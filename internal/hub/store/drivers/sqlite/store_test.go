package sqlite

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/ecohubks/ecohub/pkg/idx"
	"github.com/stretchr/testify/require"
)

// A memory database lives on a single connection; concurrent transactions
// must serialize on it instead of landing on fresh, unmigrated connections.
func TestMemoryStoreSurvivesConcurrentTransactions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	const n = 8
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- st.WithTx(ctx, func(tx store.Tx) error {
				return tx.Roles().CreateRole(ctx, domain.Role{
					ID:   idx.New().String(),
					Name: fmt.Sprintf("Auditor %d", i),
				})
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	roles, err := st.Roles().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, roles, n)
}
