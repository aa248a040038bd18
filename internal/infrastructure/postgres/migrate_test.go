package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_Sorted(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_init.sql", names[0])
}

func TestInitMigration_DeclaresLedgerConstraints(t *testing.T) {
	body, err := migrationsFS.ReadFile("migrations/001_init.sql")
	require.NoError(t, err)
	sql := string(body)
	assert.Contains(t, sql, "CHECK (estoque_atual >= 0)")
	assert.Contains(t, sql, "CHECK (quantidade > 0)")
	assert.Contains(t, sql, "ON DELETE RESTRICT")
	assert.Contains(t, sql, "trg_movimentacoes_inmutables")
	assert.Contains(t, sql, "nome           VARCHAR(100) NOT NULL UNIQUE")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, "parafuso", escapeLike("parafuso"))
}
