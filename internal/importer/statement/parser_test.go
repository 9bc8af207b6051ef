package statement_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/bullseye-app/bullseye/internal/importer/statement"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParse_Conta(t *testing.T) {
	csv := `Consultar saldos e movimentos à ordem - 31-01-2026;"=""0000"""
Nome cliente;JOHN DOE
NIF;"=""123"""

Dados da conta
Conta;0000 - EUR - Conta Extracto
Saldo contabilístico;1.000,00 EUR
Saldo disponível;1.000,00 EUR

Data mov.;Data-valor;Descrição;Montante;Saldo contabilístico após movimento
30-01-2026;30-01-2026;INSTITUTO GESTAO FINA;-588,74;48.825,46
09-01-2026;09-01-2026;TFI Wise;8.608,52;52.532,78
`

	entries, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, date(2026, 1, 30), entries[0].Date)
	assert.Equal(t, "INSTITUTO GESTAO FINA", entries[0].Description)
	assert.Equal(t, int64(58874), entries[0].Amount)
	assert.Equal(t, transaction.TypeExpense, entries[0].Type)

	assert.Equal(t, date(2026, 1, 9), entries[1].Date)
	assert.Equal(t, "TFI Wise", entries[1].Description)
	assert.Equal(t, int64(860852), entries[1].Amount)
	assert.Equal(t, transaction.TypeIncome, entries[1].Type)
}

func TestParse_SplitDebitCredit(t *testing.T) {
	csv := `Consultar saldos e movimentos de cartões - 15-02-2026
Conta cartão ;4163 **** **** 8016 - EUR - Business Débito

Data ;Data valor ;Descrição ;Débito ;Crédito ;
16-12-2025 ;14-12-2025 ;PA GONDOMAR         GONDOMAR ;64,00 ; ;
31-12-2025 ;29-12-2025 ;REFUND AMAZON ;  ;25,00 ;
 ; ; ; ;Página 1/2 ;
`

	entries, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(6400), entries[0].Amount)
	assert.Equal(t, transaction.TypeExpense, entries[0].Type)

	assert.Equal(t, int64(2500), entries[1].Amount)
	assert.Equal(t, transaction.TypeIncome, entries[1].Type)
}

func TestParse_GenericWithCategory(t *testing.T) {
	csv := `Date,Description,Amount,Category
2025-10-03,WEEKLY SHOP,-84.20,Groceries
2025-10-05,SALARY,2500.00,
`

	entries, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, date(2025, 10, 3), entries[0].Date)
	assert.Equal(t, int64(8420), entries[0].Amount)
	assert.Equal(t, transaction.TypeExpense, entries[0].Type)
	assert.Equal(t, "Groceries", entries[0].Category)

	assert.Equal(t, int64(250000), entries[1].Amount)
	assert.Equal(t, transaction.TypeIncome, entries[1].Type)
	assert.Empty(t, entries[1].Category)
}

func TestParse_Latin1Encoding(t *testing.T) {
	utf8CSV := "Data mov.;Descrição;Montante\n30-01-2026;CAFÉ CENTRAL;-10,00\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	entries, err := statement.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "CAFÉ CENTRAL", entries[0].Description)
}

func TestParse_DifferentColumnOrder(t *testing.T) {
	csv := `Random;MetaData
Montante;Descrição;Data mov.;Ignored
-10,00;TEST_ORDER;30-01-2026;XXX
`

	entries, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "TEST_ORDER", entries[0].Description)
	assert.Equal(t, int64(1000), entries[0].Amount)
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := statement.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching statement format")
}

func TestParse_HeaderOnly(t *testing.T) {
	csv := `Data mov.;Data-valor;Descrição;Montante`

	entries, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParse_MissingDescription(t *testing.T) {
	csv := `Data mov.;Descrição;Montante
30-01-2026;;-10,00
`

	_, err := statement.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}
