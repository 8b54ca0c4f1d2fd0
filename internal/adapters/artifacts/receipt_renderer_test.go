package artifacts_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsledger/ledgerd/internal/adapters/artifacts"
	"github.com/opsledger/ledgerd/internal/core/domain"
)

func TestRender_WritesReceiptDocument(t *testing.T) {
	dir := t.TempDir()
	renderer := artifacts.NewFileReceiptRenderer(dir, 2)

	receipt := domain.Receipt{
		ReceiptID:   "r-1",
		Reference:   "RCP-20260312-0001",
		ReceiptDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Amount:      150000,
		Method:      domain.MethodBank,
		IssuedBy:    "cashier@example.com",
		IssuedTo:    "client-acme",
	}
	payment := domain.Payment{Reference: "PAY-20260312-0001", Method: domain.MethodBank, Amount: 150000}
	invoice := domain.Invoice{Reference: "INV-20260310-0001", TotalAmount: 400000, PaidAmount: 150000}

	path, err := renderer.Render(context.Background(), receipt, payment, invoice)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "RCP-20260312-0001.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "RECEIPT RCP-20260312-0001")
	assert.Contains(t, string(content), "Invoice:    INV-20260310-0001")
	assert.Contains(t, string(content), "Amount:     1500.00")
	assert.Contains(t, string(content), "Outstanding: 2500.00")
}

func TestRender_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "receipts")
	renderer := artifacts.NewFileReceiptRenderer(dir, 2)

	path, err := renderer.Render(context.Background(), domain.Receipt{Reference: "RCP-20260312-0002"}, domain.Payment{}, domain.Invoice{})

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestRender_CancelledContext(t *testing.T) {
	renderer := artifacts.NewFileReceiptRenderer(t.TempDir(), 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := renderer.Render(ctx, domain.Receipt{Reference: "RCP-20260312-0003"}, domain.Payment{}, domain.Invoice{})

	assert.ErrorIs(t, err, context.Canceled)
}
