package parsefields

import (
	"log/slog"

	"github.com/joseph-ayodele/request-ocr/internal/entity"
	"github.com/joseph-ayodele/request-ocr/internal/normalize"
	"github.com/joseph-ayodele/request-ocr/internal/parse"
)

// Pipeline turns OCR text into a normalized usage record.
type Pipeline struct {
	Normalizer *normalize.Normalizer
	Log        *slog.Logger
}

func NewPipeline(n *normalize.Normalizer, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Normalizer: n, Log: log}
}

// Run extracts the fields of one document's text and normalizes them.
func (p *Pipeline) Run(document, blobName, text string) (entity.UsageRecord, error) {
	fields := parse.Extract(text)
	p.Log.Debug("fields extracted",
		"document", document,
		"speed_token", fields.SpeedToken,
		"eh_reference", fields.EHReference,
		"euler_number", fields.EulerNumber,
		"has_telephone", fields.Telephone != "",
		"has_address", fields.Address != "",
		"raw_date", fields.RawDate,
	)
	if fields.Telephone != "" && !parse.ValidTelephone(parse.MarkerTelephone+" "+fields.Telephone) {
		p.Log.Debug("telephone not in (area) number layout", "document", document, "telephone", fields.Telephone)
	}
	return p.Normalizer.Normalize(document, blobName, fields)
}
