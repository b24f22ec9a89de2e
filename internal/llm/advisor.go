package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const advisorPrompt = `You are a course registration assistant for a university student.

The student's current selection:
%s

%s

Credits selected in total: %d

Rules:
- For every conflict, recommend exactly one course to keep and list the rest to drop.
- Prefer major courses over general and elective ones, then higher credits.
- Never recommend dropping a course that is not part of a conflict.
- Mention alternative sections of the same course when the selection contains them.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "verdicts": [
    {
      "keep": "CODE-SECTION",
      "drop": ["CODE-SECTION"],
      "reason": "string"
    }
  ],
  "summary": "string",
  "warnings": ["string"]
}`

// SelectedCourse is one selected offering for LLM context.
type SelectedCourse struct {
	Key        string // CODE-SECTION
	Title      string
	Instructor string
	Credits    int
	Category   string
	Schedule   string // e.g. "월1 수2"
}

// Conflict is one overlapping block of the built timetable for LLM context.
type Conflict struct {
	Day   string // e.g. "Monday"
	Start string // HH:MM
	End   string // HH:MM
	Keys  []string
}

// AdviseRequest contains the input for the advisor.
type AdviseRequest struct {
	Selected  []SelectedCourse
	Conflicts []Conflict
}

// Verdict is the advisor's recommendation for one conflict.
type Verdict struct {
	Keep   string   `json:"keep"`
	Drop   []string `json:"drop"`
	Reason string   `json:"reason"`
}

// Advice contains the parsed LLM response.
type Advice struct {
	Verdicts []Verdict `json:"verdicts"`
	Summary  string    `json:"summary"`
	Warnings []string  `json:"warnings"`
}

// Advisor uses an LLM to resolve timetable conflicts.
type Advisor struct {
	client Client
}

// NewAdvisor creates a new Advisor with the given LLM client.
func NewAdvisor(client Client) *Advisor {
	return &Advisor{client: client}
}

// Advise asks the LLM which courses to keep and which to drop.
func (a *Advisor) Advise(ctx context.Context, req AdviseRequest) (*Advice, error) {
	reply, err := a.client.Complete(ctx, buildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("querying LLM: %w", err)
	}

	var advice Advice
	if err := json.Unmarshal([]byte(jsonPayload(reply)), &advice); err != nil {
		return nil, fmt.Errorf("parsing advice: %w (reply: %s)", err, reply)
	}
	return &advice, nil
}

func buildPrompt(req AdviseRequest) string {
	return fmt.Sprintf(advisorPrompt,
		formatSelected(req.Selected),
		formatConflicts(req.Conflicts),
		totalCredits(req.Selected),
	)
}

// jsonPayload pulls the JSON body out of a reply that may wrap it in a
// markdown code fence or surround it with prose.
func jsonPayload(reply string) string {
	for _, fence := range []string{"```json", "```"} {
		if _, rest, ok := strings.Cut(reply, fence); ok {
			if body, _, closed := strings.Cut(rest, "```"); closed {
				return strings.TrimSpace(body)
			}
		}
	}

	// No fence, take the first balanced object or array.
	if start := strings.IndexAny(reply, "{["); start >= 0 {
		depth := 0
		for i := start; i < len(reply); i++ {
			switch reply[i] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return reply[start : i+1]
				}
			}
		}
	}
	return strings.TrimSpace(reply)
}

func formatSelected(selected []SelectedCourse) string {
	if len(selected) == 0 {
		return "Selected courses: None"
	}

	var sb strings.Builder
	sb.WriteString("Selected courses:\n")
	for _, c := range selected {
		sb.WriteString(fmt.Sprintf("- %s %q by %s, %d credits, %s, meets %s\n",
			c.Key, c.Title, c.Instructor, c.Credits, c.Category, c.Schedule))
	}
	return sb.String()
}

func formatConflicts(conflicts []Conflict) string {
	if len(conflicts) == 0 {
		return "Schedule conflicts: None"
	}

	var sb strings.Builder
	sb.WriteString("Schedule conflicts (resolve each one):\n")
	for _, c := range conflicts {
		sb.WriteString(fmt.Sprintf("- %s %s-%s: %s\n",
			c.Day, c.Start, c.End, strings.Join(c.Keys, " vs ")))
	}
	return sb.String()
}

func totalCredits(selected []SelectedCourse) int {
	total := 0
	for _, c := range selected {
		total += c.Credits
	}
	return total
}
