package tr

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxFromCtx_Missing(t *testing.T) {
	_, err := TxFromCtx(context.Background())
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestTxFromCtx_NilTx(t *testing.T) {
	ctx := WithTx(context.Background(), nil)

	_, err := TxFromCtx(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}
