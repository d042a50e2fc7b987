package chat

import "github.com/theimaginaryfoundation/mood-o-meter/sentiment"

// Canned reply catalogs, keyed by the sentiment label of the user's message.
var labelTemplates = map[sentiment.Label][]string{
	sentiment.LabelPositive: {
		"That's wonderful to hear! I'm glad you're having a positive experience.",
		"Great! I'm happy to help you further.",
		"Excellent! Your satisfaction is important to us.",
		"That's fantastic! How else can I assist you today?",
		"I'm thrilled to hear that! Let me know if there's anything else.",
	},
	sentiment.LabelNegative: {
		"I understand your frustration. Let me help resolve this for you.",
		"I apologize for the inconvenience. I'll make sure your concern is addressed.",
		"I'm sorry to hear that. Your feedback is valuable and I want to make this right.",
		"I hear your concerns. Let's work together to find a solution.",
		"I appreciate you bringing this to my attention. How can I improve your experience?",
	},
	sentiment.LabelNeutral: {
		"I understand. How can I assist you further?",
		"Thank you for sharing. What else would you like to know?",
		"Got it. Is there anything specific I can help with?",
		"I see. Let me know what you need.",
		"Understood. Feel free to ask me anything.",
	},
}

var greetingTemplates = []string{
	"Hello! I'm here to help you. How are you doing today?",
	"Hi there! Welcome! What can I do for you?",
	"Greetings! I'm ready to assist you with anything you need.",
	"Hey! Great to chat with you. What's on your mind?",
}

var farewellTemplates = []string{
	"Thank you for chatting with me! Have a wonderful day!",
	"Goodbye! Feel free to reach out anytime.",
	"Take care! It was nice talking with you.",
	"Farewell! Hope to chat again soon!",
}

// Fixed single-reply intents.
const (
	problemReply         = "I'm sorry you're experiencing technical difficulties. Can you provide more details so I can help resolve this?"
	pricingReplyNegative = "I understand pricing is a concern. Let me see what options might work better for your budget."
	pricingReplyDefault  = "I'm happy to discuss pricing options that fit your needs."
	thanksReply          = "You're very welcome! Is there anything else I can help you with?"
)

// Intent keyword lists. Matching is case-insensitive on whole words; multi-word entries
// match as phrases.
var (
	greetingKeywords = []string{"hello", "hi", "hey", "greetings"}
	farewellKeywords = []string{"bye", "goodbye", "farewell", "see you"}
	problemKeywords  = []string{"problem", "issue", "bug", "error", "broken"}
	pricingKeywords  = []string{"price", "cost", "expensive", "cheap"}
	thanksKeywords   = []string{"thank", "thanks", "appreciate"}
)
