package llm

import "context"

// Provider abstracts the generative model behind resume import, field
// rewriting and keyword suggestions.
type Provider interface {
	// StructureResume turns raw extracted resume text into the structured
	// JSON document shape. The returned bytes are a single JSON object.
	StructureResume(ctx context.Context, rawText string) ([]byte, error)

	// RewriteVariants proposes alternative phrasings for one field's text.
	// fieldKind names the field context, ex: "experience description".
	RewriteVariants(ctx context.Context, fieldKind, text string) ([]string, error)

	// SuggestKeywords extracts role-relevant keywords from a resume summary.
	SuggestKeywords(ctx context.Context, summary string) ([]string, error)

	Close() error
}
