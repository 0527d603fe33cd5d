package genai

import "context"

// Generate runs the shared generation pipeline: send the prompt, then
// decode the first JSON value in the response into out. Every AI-backed
// feature goes through this one function instead of re-implementing the
// prompt/extract/decode sequence per route.
//
// Errors are either a provider failure from the Completer (possibly
// wrapping ErrUpstreamAuth or ErrUpstreamQuota) or an *ExtractionError
// carrying the raw response. Callers with a safe fallback substitute it on
// *ExtractionError; callers without one surface the raw text.
func Generate(ctx context.Context, c Completer, prompt string, out interface{}) error {
	text, err := c.Complete(ctx, prompt)
	if err != nil {
		return err
	}
	return ExtractJSON(text, out)
}
