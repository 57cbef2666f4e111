package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbendourou/Money-Manager/internal/model"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>MAD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240105120000[0:GMT]
<TRNAMT>3000.00
<FITID>2024010501
<NAME>VIREMENT SALAIRE
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>POS PURCHASE CAFE ATLAS
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012001
<NAME>MARJANE MARKET
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestOFXParserParseFile(t *testing.T) {
	parser := NewOFXParser()

	transactions, err := parser.ParseFile(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	salary := transactions[0]
	assert.Equal(t, model.TypeRevenue, salary.Type)
	assert.Equal(t, 3000.0, salary.Amount)
	assert.Equal(t, "VIREMENT SALAIRE", salary.Description)
	assert.Equal(t, "1234567890", salary.Account)

	coffee := transactions[1]
	assert.Equal(t, model.TypeExpense, coffee.Type)
	assert.Equal(t, 25.5, coffee.Amount, "debit amounts become positive magnitudes")
	assert.Equal(t, "CAFE ATLAS", coffee.Description, "POS prefix stripped")

	assert.Equal(t, "MARJANE MARKET", transactions[2].Description)
}

func TestOFXParserPreprocess(t *testing.T) {
	parser := NewOFXParser()

	t.Run("fixes mixed-case severity", func(t *testing.T) {
		got := parser.preprocessOFX("<SEVERITY>Info</SEVERITY>")
		assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", got)
	})

	t.Run("closes unterminated SGML tags", func(t *testing.T) {
		got := parser.preprocessOFX("<OFX")
		assert.Equal(t, "<OFX>", got)
	})

	t.Run("trims leading blank lines", func(t *testing.T) {
		got := parser.preprocessOFX("\n\n  OFXHEADER:100")
		assert.True(t, strings.HasPrefix(got, "OFXHEADER"))
	})
}

func TestOFXParserBadInput(t *testing.T) {
	parser := NewOFXParser()
	_, err := parser.ParseFile(strings.NewReader("not an ofx file"))
	assert.Error(t, err)
}
