package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/stretchr/testify/require"
)

// The ledger stores domain.Outcome values verbatim, so the payments
// migration must accept exactly that vocabulary or every upsert is
// rejected by the CHECK constraint.
func TestPaymentsMigrationAcceptsAllOutcomes(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", "00003_create_payments.sql"))
	require.NoError(t, err)

	re := regexp.MustCompile(`status\s+TEXT\s+NOT\s+NULL\s+CHECK\s+\(status\s+IN\s+\(([^)]*)\)\)`)
	m := re.FindStringSubmatch(string(raw))
	require.Len(t, m, 2, "payments migration lost its status CHECK")

	outcomes := []domain.Outcome{
		domain.OutcomePending,
		domain.OutcomeSuccess,
		domain.OutcomeFailure,
	}
	for _, out := range outcomes {
		require.Contains(t, m[1], "'"+string(out)+"'",
			"payments.status CHECK rejects outcome %q", out)
	}

	// And nothing beyond the Outcome vocabulary sneaks back in.
	quoted := regexp.MustCompile(`'([^']*)'`).FindAllStringSubmatch(m[1], -1)
	require.Len(t, quoted, len(outcomes))
}
