package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

func TestStatementLineSignedAmount(t *testing.T) {
	debit := domain.BankStatementLine{Amount: 150000, Direction: domain.StatementDebit}
	credit := domain.BankStatementLine{Amount: 80000, Direction: domain.StatementCredit}

	assert.Equal(t, int64(150000), debit.SignedAmount())
	assert.Equal(t, int64(-80000), credit.SignedAmount())
}

func TestJournalEntryNetEffect(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.JournalEntryLine{
			{AccountCode: "1000", Debit: 150000},
			{AccountCode: "1000", Credit: 20000},
			{AccountCode: "1200", Credit: 130000},
		},
	}

	assert.Equal(t, int64(130000), entry.NetEffect("1000"))
	assert.Equal(t, int64(-130000), entry.NetEffect("1200"))
	assert.Equal(t, int64(0), entry.NetEffect("9999"))
}
