package extract

// Payload is the Vapi end-of-call webhook body. Vapi delivers two shapes:
// the call fields at the top level, or nested one level under "message".
// Unwrap hides the difference from the extractors.
type Payload struct {
	Message *Message `json:"message"`

	Transcript  string      `json:"transcript"`
	Summary     string      `json:"summary"`
	Artifact    Artifact    `json:"artifact"`
	Analysis    Analysis    `json:"analysis"`
	Customer    Customer    `json:"customer"`
	PhoneNumber PhoneNumber `json:"phoneNumber"`
	Call        Call        `json:"call"`
}

type Message struct {
	Transcript  string      `json:"transcript"`
	Summary     string      `json:"summary"`
	Artifact    Artifact    `json:"artifact"`
	Analysis    Analysis    `json:"analysis"`
	Customer    Customer    `json:"customer"`
	PhoneNumber PhoneNumber `json:"phoneNumber"`
	Call        Call        `json:"call"`
}

type Artifact struct {
	Transcript string `json:"transcript"`
}

type Analysis struct {
	Summary string `json:"summary"`
}

// Customer is the caller; Number is their phone in E.164.
type Customer struct {
	Number string `json:"number"`
}

// PhoneNumber is the Twilio number that received the call. It is what maps
// the webhook to a business.
type PhoneNumber struct {
	Number string `json:"number"`
}

type Call struct {
	ID          string `json:"id"`
	AssistantID string `json:"assistantId"`
}

// Unwrap returns the call message regardless of nesting shape.
func (p *Payload) Unwrap() Message {
	if p.Message != nil {
		return *p.Message
	}
	return Message{
		Transcript:  p.Transcript,
		Summary:     p.Summary,
		Artifact:    p.Artifact,
		Analysis:    p.Analysis,
		Customer:    p.Customer,
		PhoneNumber: p.PhoneNumber,
		Call:        p.Call,
	}
}

// TranscriptText prefers the top-level transcript and falls back to the
// artifact copy.
func (m Message) TranscriptText() string {
	if m.Transcript != "" {
		return m.Transcript
	}
	return m.Artifact.Transcript
}

// SummaryText prefers the top-level summary and falls back to the analysis
// copy.
func (m Message) SummaryText() string {
	if m.Summary != "" {
		return m.Summary
	}
	return m.Analysis.Summary
}
