package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTransaction_EmptyItems(t *testing.T) {
	_, err := NewTransaction("t1", "c1", "d1", nil, ShippingCost, BaseFee)
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestNewTransaction_ComputesTotalOnce(t *testing.T) {
	trx, err := NewTransaction("t1", "c1", "d1", []TransactionItem{
		{ProductID: "P1", Quantity: 2, UnitPrice: 50000},
	}, 500000, 100000)
	require.NoError(t, err)

	// 2*50000 + 500000 + 100000
	require.Equal(t, int64(700000), trx.TotalAmount)
	require.Equal(t, StatusPending, trx.Status)
	require.Len(t, trx.Items, 1)
	require.False(t, trx.Final())
}

func TestTransaction_ApproveFromPending(t *testing.T) {
	trx := pendingTransaction(t)

	require.True(t, trx.Approve("wompi-1"))
	require.Equal(t, StatusApproved, trx.Status)
	require.Equal(t, "wompi-1", trx.GatewayTransactionID)
	require.True(t, trx.Final())
}

func TestTransaction_ApproveFromProcessing(t *testing.T) {
	trx := pendingTransaction(t)
	require.True(t, trx.MarkProcessing("wompi-1"))

	require.True(t, trx.Approve("wompi-1"))
	require.Equal(t, StatusApproved, trx.Status)
}

func TestTransaction_TerminalStatusIsImmutable(t *testing.T) {
	trx := pendingTransaction(t)
	require.True(t, trx.Decline("wompi-1"))

	require.False(t, trx.Approve("wompi-2"))
	require.False(t, trx.Decline("wompi-2"))
	require.False(t, trx.MarkProcessing("wompi-2"))
	require.False(t, trx.MarkError("wompi-2"))

	require.Equal(t, StatusDeclined, trx.Status)
	require.Equal(t, "wompi-1", trx.GatewayTransactionID)
}

func TestTransaction_MarkProcessingOnlyFromPending(t *testing.T) {
	trx := pendingTransaction(t)
	require.True(t, trx.MarkProcessing("wompi-1"))
	require.False(t, trx.MarkProcessing("wompi-2"))
	require.Equal(t, StatusProcessing, trx.Status)
}

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"APPROVED", StatusApproved, true},
		{"DECLINED", StatusDeclined, true},
		{"ERROR", StatusError, true},
		{"VOIDED", StatusDeclined, true},
		{"PENDING", StatusProcessing, true},
		{"SOMETHING_ELSE", "", false},
	}
	for _, tc := range cases {
		got, ok := MapGatewayStatus(tc.raw)
		require.Equal(t, tc.ok, ok, tc.raw)
		require.Equal(t, tc.want, got, tc.raw)
	}
}

func pendingTransaction(t *testing.T) *Transaction {
	t.Helper()
	trx, err := NewTransaction("t1", "c1", "d1", []TransactionItem{
		{ProductID: "P1", Quantity: 1, UnitPrice: 10000},
	}, ShippingCost, BaseFee)
	require.NoError(t, err)
	return trx
}
