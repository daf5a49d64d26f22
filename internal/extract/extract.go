// Package extract derives a structured appointment-booking record from the
// free-text summary and transcript of a completed voice-AI call. Extraction
// is a cascade of pattern rules per field; every extractor is a pure function
// of the input text and degrades to nil (or a documented default) instead of
// failing. Normalization of the extracted date and time phrases happens later
// in package normalize.
package extract

// BookingInfo is the candidate appointment record for one call. It is built
// once per webhook and never mutated afterwards; completeness is the
// caller's concern, not this package's.
type BookingInfo struct {
	Name            *string `json:"name"`
	CustomerPhone   string  `json:"customerPhone"`
	Service         string  `json:"service"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	SpecialRequests *string `json:"specialRequests"`
}

// BookingInfoFromPayload runs every field extractor against the unified view
// of the webhook payload. It cannot fail: fields the rules can't locate come
// back nil, and Service falls back to "appointment".
func BookingInfoFromPayload(p *Payload) BookingInfo {
	msg := p.Unwrap()
	summary := msg.SummaryText()
	transcript := msg.TranscriptText()

	return BookingInfo{
		Name:            ExtractName(summary, transcript),
		CustomerPhone:   msg.Customer.Number,
		Service:         ExtractService(summary),
		Date:            ExtractDate(summary),
		Time:            ExtractTime(summary),
		SpecialRequests: ExtractSpecialRequests(summary, transcript),
	}
}
