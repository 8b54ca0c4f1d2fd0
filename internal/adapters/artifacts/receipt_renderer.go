package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opsledger/ledgerd/internal/core/domain"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/utils"
)

// fileReceiptRenderer writes receipt documents as plain text files under a
// configured directory. Rendering is the best-effort side channel of payment
// recording; ledger state never depends on it.
type fileReceiptRenderer struct {
	dir       string
	precision int
}

// NewFileReceiptRenderer creates a renderer writing into dir.
func NewFileReceiptRenderer(dir string, precision int) portssvc.ReceiptArtifactRenderer {
	return &fileReceiptRenderer{dir: dir, precision: precision}
}

var _ portssvc.ReceiptArtifactRenderer = (*fileReceiptRenderer)(nil)

// Render writes the receipt document and returns its path.
func (r *fileReceiptRenderer) Render(ctx context.Context, receipt domain.Receipt, payment domain.Payment, invoice domain.Invoice) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory %s: %w", r.dir, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "RECEIPT %s\n", receipt.Reference)
	fmt.Fprintf(&b, "Date:       %s\n", receipt.ReceiptDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Issued to:  %s\n", receipt.IssuedTo)
	fmt.Fprintf(&b, "Issued by:  %s\n", receipt.IssuedBy)
	fmt.Fprintf(&b, "Invoice:    %s\n", invoice.Reference)
	fmt.Fprintf(&b, "Payment:    %s (%s)\n", payment.Reference, payment.Method)
	fmt.Fprintf(&b, "Amount:     %s\n", utils.FormatMinorUnits(receipt.Amount, r.precision))
	fmt.Fprintf(&b, "Outstanding: %s\n", utils.FormatMinorUnits(invoice.Outstanding(), r.precision))

	path := filepath.Join(r.dir, receipt.Reference+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt artifact %s: %w", path, err)
	}

	return path, nil
}
