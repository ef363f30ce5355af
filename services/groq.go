package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const groqAPIURL = "https://api.groq.com/openai/v1/chat/completions"

type GroqService struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewGroqService(apiKey string) *GroqService {
	return &GroqService{
		apiKey: apiKey,
		apiURL: groqAPIURL,
		client: &http.Client{Timeout: 25 * time.Second},
	}
}

type GroqRequest struct {
	Model       string        `json:"model"`
	Messages    []GroqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type GroqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GroqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateQuestions asks the Groq chat-completions API for count MCQs based
// on the job's skills text. A single attempt; any failure is returned to the
// caller, which falls back to the local generator.
func (s *GroqService) GenerateQuestions(skillsText string, count int) ([]GeneratedQuestion, error) {
	prompt := BuildQuestionPrompt(skillsText, count)

	requestBody := GroqRequest{
		Model: "llama-3.1-8b-instant",
		Messages: []GroqMessage{
			{
				Role:    "system",
				Content: "You generate only valid JSON when requested, with no additional commentary.",
			},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("groq API error: %s", b)
	}

	var groqResp GroqResponse
	if err := json.NewDecoder(resp.Body).Decode(&groqResp); err != nil {
		return nil, err
	}

	if len(groqResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	return ParseQuestionsJSON(groqResp.Choices[0].Message.Content, count)
}

// BuildQuestionPrompt builds the strict-format prompt for the generator.
func BuildQuestionPrompt(skillsText string, count int) string {
	return fmt.Sprintf(`You are an expert technical assessment generator.

Generate exactly %d UNIQUE, NON-REPEATING, intermediate-to-advanced MCQs based strictly on the following job skills:
%s

HARD RULES (MUST FOLLOW ALL):
1. Every question MUST be completely unique.
2. Questions MUST test practical, real-world problem-solving based on the given skills.
3. Include scenario-based questions, debugging questions, best practices and short code snippets.
4. Each question MUST have exactly 4 answer options.
5. Only one correct answer per question.
6. Correct answer MUST be provided as a numeric index (0-3) of the options array.

OUTPUT FORMAT (STRICT - NO EXTRA TEXT):
Return ONLY this JSON structure:

{
"questions": [
  {
  "question": "question text here",
  "options": ["A", "B", "C", "D"],
  "correct_option": 0
  }
]
}

ABSOLUTE REQUIREMENTS:
- Exactly %d objects inside the "questions" array.
- Each "options" array MUST contain exactly 4 items.
- "correct_option" MUST be an integer (0, 1, 2, or 3).
- JSON MUST be valid and directly parsable.`, count, skillsText, count)
}
