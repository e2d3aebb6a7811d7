package parsefields

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/entity"
	"github.com/joseph-ayodele/request-ocr/internal/normalize"
)

const letter = `12th March 2024

EH reference number
3
Euler N°: 1234567890

Dear Sir or Madam,
We would like to receive information about the company below:
ACME-123: HRB 55012
Acme Trading GmbH
12 Rue de Rivoli
Paris
France
Telephone : (033) 1 234 5678
Please include the shareholder structure.
Yours faithfully,
Jane Doe
`

func newPipeline(t *testing.T) *Pipeline {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	n, err := normalize.NewNormalizer(logger)
	require.NoError(t, err)
	return NewPipeline(n, logger)
}

func TestRun(t *testing.T) {
	rec, err := newPipeline(t).Run("req-001", "inbox/req-001.pdf", letter)
	require.NoError(t, err)

	assert.Equal(t, "req-001", rec.DocumentName)
	assert.Equal(t, "inbox/req-001.pdf", rec.BlobName)
	assert.Equal(t, "Acme Trading GmbH", entity.StrOrEmpty(rec.Company))
	assert.Equal(t, "France", entity.StrOrEmpty(rec.Country))
	assert.Equal(t, "Express", entity.StrOrEmpty(rec.ServiceType))
	assert.Equal(t, "12/03/2024", entity.StrOrEmpty(rec.Date))
	assert.Equal(t, "1234567890", entity.StrOrEmpty(rec.EnteredRefNo))
	assert.Equal(t, "(033) 1 234 5678", rec.Telephone)
}

func TestRun_BadDate(t *testing.T) {
	_, err := newPipeline(t).Run("req-002", "req-002.pdf", "32nd Smarch 2024\nTelephone : (01) 234\n")
	require.Error(t, err)
	assert.Equal(t, common.CodeDateFormat, common.CodeOf(err))
}

func TestRun_LogsReferences(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n, err := normalize.NewNormalizer(logger)
	require.NoError(t, err)

	text := strings.Replace(letter, "EH reference number\n", "EH reference number: 0123456789\n", 1)
	_, err = NewPipeline(n, logger).Run("req-001", "req-001.pdf", text)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "eh_reference=0123456789")
	assert.Contains(t, buf.String(), "euler_number=1234567890")
}
