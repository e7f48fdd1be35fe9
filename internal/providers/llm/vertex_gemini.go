package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

const structurePrompt = `You are a resume parser. Convert the resume text below into a single JSON object with these keys:
"personal_info": object with string values for "full_name", "email", "phone", "location", "website", "linkedin", "summary", "dob", "nationality", "gender", "race", "ethnicity";
"experience": array of {"company", "position", "start_date", "end_date", "description"};
"education": array of {"school", "degree", "year"};
"skills": array of {"name"};
"projects": array of {"name", "description"};
"certifications": array of {"name", "issuer", "year"};
"interests": array of {"name"};
"volunteering": array of {"organization", "role", "start_date", "end_date", "description"};
"honors": array of {"title", "issuer", "date", "description"};
"languages": array of {"name", "proficiency"};
"publications": array of {"title", "publisher", "date", "description"};
"recommendations": array of {"name", "title", "text"}.
Every value must be a string. Use "" for anything the resume does not state. Do not invent content.

Resume text:
%s`

const rewritePrompt = `Rewrite the following resume %s in three different ways. Keep each variant truthful to the original content, professional and concise. Respond with a JSON array of exactly three strings and nothing else.

Text:
%s`

const keywordsPrompt = `List the most relevant professional keywords for the resume summary below. Respond with a single comma-separated line of 5 to 12 keywords and nothing else.

Summary:
%s`

type VertexGemini struct {
	client    *vertexgenai.Client
	jsonModel *vertexgenai.GenerativeModel
	textModel *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	jm := c.GenerativeModel(modelName)
	jm.GenerationConfig.ResponseMIMEType = "application/json"

	tm := c.GenerativeModel(modelName)

	return &VertexGemini{client: c, jsonModel: jm, textModel: tm}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) generate(ctx context.Context, m *vertexgenai.GenerativeModel, prompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, vertexgenai.Text(prompt))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty model response")
	}
	return sb.String(), nil
}

func (v *VertexGemini) StructureResume(ctx context.Context, rawText string) ([]byte, error) {
	out, err := v.generate(ctx, v.jsonModel, fmt.Sprintf(structurePrompt, rawText))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func (v *VertexGemini) RewriteVariants(ctx context.Context, fieldKind, text string) ([]string, error) {
	out, err := v.generate(ctx, v.jsonModel, fmt.Sprintf(rewritePrompt, fieldKind, text))
	if err != nil {
		return nil, err
	}

	var variants []string
	if err := json.Unmarshal([]byte(out), &variants); err != nil {
		return nil, fmt.Errorf("malformed rewrite response: %w", err)
	}
	if len(variants) == 0 {
		return nil, errors.New("model returned no variants")
	}
	return variants, nil
}

func (v *VertexGemini) SuggestKeywords(ctx context.Context, summary string) ([]string, error) {
	out, err := v.generate(ctx, v.textModel, fmt.Sprintf(keywordsPrompt, summary))
	if err != nil {
		return nil, err
	}

	var keywords []string
	for _, k := range strings.Split(out, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return nil, errors.New("model returned no keywords")
	}
	return keywords, nil
}
