package ai

import "time"

// Name is reported by Extractor.Name.
const Name = "ai"

const (
	DefaultTimeout     = 8 * time.Second
	DefaultTimezone    = "UTC"
	DefaultTemperature = 0.2
	DefaultTopP        = 0.8
	DefaultTopK        = 40
	DefaultMaxTokens   = 2048

	responseMIMEType = "application/json"
	dateOnlyLayout   = "2006-01-02"
)

// SystemPrompt is the instruction sent with every extraction request.
const SystemPrompt = `You extract actionable tasks from personal notes.

RULES:
1. Return ONLY a JSON array. No markdown, no code blocks, no explanation text.
2. Each element is an object with:
   - title: short imperative description of the action (required, never empty)
   - priority: exactly one of "high", "medium", "low", judged by urgency (required)
   - dueDate: RFC3339 date-time if the note mentions or implies a date (omit otherwise)
   - tags: array of short lowercase category words without "#" (required, can be empty)
   - description: one sentence of context if the note gives any (optional)
3. Resolve relative dates ("tomorrow", "friday", "next week") against the reference time.
4. Ignore lines that are not things to do.
5. If there are no tasks, return [].

EXAMPLE OUTPUT:
[
  {
    "title": "Call Dr. Smith to schedule appointment",
    "priority": "high",
    "dueDate": "2024-06-15T09:00:00Z",
    "tags": ["health", "calls"],
    "description": "Discuss test results from last visit"
  }
]`

const textPromptTemplate = `REFERENCE TIME: %s (%s)

Extract the tasks from this note:
"""
%s
"""`

const imagePromptTemplate = `REFERENCE TIME: %s (%s)

The attached image is a photographed note, possibly handwritten. Read it and extract the tasks it contains.`
