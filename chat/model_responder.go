package chat

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"

	"github.com/theimaginaryfoundation/mood-o-meter/chat/provider"
	"github.com/theimaginaryfoundation/mood-o-meter/fileutils"
	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
)

const modelResponderPrompt = `You are the reply voice of a small support chatbot.
You are given the user's message, the sentiment label a lexicon analyzer assigned to it,
and a canned template reply that matches that sentiment. Rephrase the template into one
natural, concise reply (1-2 sentences) that keeps its intent and tone. Do not contradict
the sentiment label, do not invent facts or commitments, and do not mention the analysis.`

type modelReplyRequest struct {
	UserMessage string `json:"user_message"`
	Sentiment   string `json:"sentiment"`
	Template    string `json:"template"`
}

type modelReplyResponse struct {
	Reply string `json:"reply"`
}

var modelReplySchema = provider.GenerateSchema[modelReplyResponse]()

// ModelResponder rephrases the canned template a fallback responder selects, via the
// OpenAI Responses API. Reply phrasing is presentation only: scores are computed before the
// responder runs, and any model failure falls back to the canned template so a flaky API
// never stalls or corrupts the conversation.
type ModelResponder struct {
	client   *openai.Client
	model    string
	fallback Responder
}

// NewModelResponder wraps fallback with model-based rephrasing.
func NewModelResponder(client *openai.Client, model string, fallback Responder) *ModelResponder {
	return &ModelResponder{client: client, model: model, fallback: fallback}
}

func (r *ModelResponder) Reply(ctx context.Context, text string, score sentiment.Score) (string, error) {
	template, err := r.fallback.Reply(ctx, text, score)
	if err != nil {
		return "", err
	}
	if r.client == nil || r.model == "" {
		return template, nil
	}

	payload, err := json.Marshal(modelReplyRequest{
		UserMessage: fileutils.Truncate(text, 800),
		Sentiment:   string(score.Label),
		Template:    template,
	})
	if err != nil {
		return template, nil
	}

	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "ChatReply",
			Schema:      modelReplySchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Rephrased chat reply JSON"),
			Type:        "json_schema",
		},
	}
	params := responses.ResponseNewParams{
		Model:           r.model,
		MaxOutputTokens: openai.Int(200),
		Instructions:    openai.String(modelResponderPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(string(payload), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := provider.CallWithRetry(ctx, r.client, params)
	if err != nil {
		return template, nil
	}

	var out modelReplyResponse
	if err := fileutils.DecodeModelJSON(resp.OutputText(), &out); err != nil {
		return template, nil
	}
	reply := strings.TrimSpace(out.Reply)
	if reply == "" {
		return template, nil
	}
	return reply, nil
}
