package installation

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/timetrack/internal/client/repositories/testdb"
	"github.com/dmitrijs2005/timetrack/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopID(t *testing.T) {
	db := testdb.New(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.DesktopID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, r.SetDesktopID(ctx, "desk-1"))
	id, err = r.DesktopID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "desk-1", id)

	err = r.SetDesktopID(ctx, "desk-1")
	assert.ErrorIs(t, err, common.ErrConstraintViolation)
}
