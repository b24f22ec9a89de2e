package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeClient returns a canned reply and records the prompt it was sent.
type fakeClient struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

var adviseRequest = AdviseRequest{
	Selected: []SelectedCourse{
		{Key: "CS101-001", Title: "Data Structures", Instructor: "Kim", Credits: 3, Category: "major", Schedule: "월1 월2"},
		{Key: "GE110-001", Title: "World History", Instructor: "Park", Credits: 2, Category: "general", Schedule: "월1"},
	},
	Conflicts: []Conflict{
		{Day: "Monday", Start: "09:00", End: "12:00", Keys: []string{"CS101-001", "GE110-001"}},
	},
}

func TestAdvise(t *testing.T) {
	client := &fakeClient{
		reply: `{
			"verdicts": [
				{"keep": "CS101-001", "drop": ["GE110-001"], "reason": "major course with more credits"}
			],
			"summary": "Keep the major course.",
			"warnings": []
		}`,
	}

	advisor := NewAdvisor(client)
	advice, err := advisor.Advise(context.Background(), adviseRequest)
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}

	if len(advice.Verdicts) != 1 {
		t.Fatalf("got %d verdicts, want 1", len(advice.Verdicts))
	}
	v := advice.Verdicts[0]
	if v.Keep != "CS101-001" {
		t.Errorf("keep = %q, want CS101-001", v.Keep)
	}
	if len(v.Drop) != 1 || v.Drop[0] != "GE110-001" {
		t.Errorf("drop = %v, want [GE110-001]", v.Drop)
	}
	if v.Reason == "" {
		t.Error("expected a reason")
	}
}

func TestAdvise_PromptContents(t *testing.T) {
	client := &fakeClient{reply: `{"verdicts": [], "summary": "", "warnings": []}`}
	advisor := NewAdvisor(client)

	if _, err := advisor.Advise(context.Background(), adviseRequest); err != nil {
		t.Fatalf("Advise failed: %v", err)
	}

	for _, want := range []string{
		"CS101-001", "GE110-001", "Data Structures",
		"Monday 09:00-12:00", "Credits selected in total: 5",
	} {
		if !strings.Contains(client.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAdvise_NoConflicts(t *testing.T) {
	client := &fakeClient{reply: `{"verdicts": [], "summary": "No conflicts.", "warnings": []}`}
	advisor := NewAdvisor(client)

	req := AdviseRequest{Selected: adviseRequest.Selected}
	if _, err := advisor.Advise(context.Background(), req); err != nil {
		t.Fatalf("Advise failed: %v", err)
	}

	if !strings.Contains(client.prompt, "Schedule conflicts: None") {
		t.Error("prompt should state that there are no conflicts")
	}
}

func TestAdvise_FencedReply(t *testing.T) {
	client := &fakeClient{
		reply: "Here you go:\n```json\n{\"verdicts\": [{\"keep\": \"CS101-001\"}], \"summary\": \"ok\"}\n```\nAnything else?",
	}

	advice, err := NewAdvisor(client).Advise(context.Background(), adviseRequest)
	if err != nil {
		t.Fatalf("Advise failed on fenced reply: %v", err)
	}
	if len(advice.Verdicts) != 1 || advice.Verdicts[0].Keep != "CS101-001" {
		t.Errorf("advice = %+v", advice)
	}
}

func TestAdvise_ClientError(t *testing.T) {
	wantErr := errors.New("connection refused")
	advisor := NewAdvisor(&fakeClient{err: wantErr})

	_, err := advisor.Advise(context.Background(), adviseRequest)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped client error, got %v", err)
	}
}

func TestAdvise_MalformedReply(t *testing.T) {
	advisor := NewAdvisor(&fakeClient{reply: "I cannot help with that."})

	if _, err := advisor.Advise(context.Background(), adviseRequest); err == nil {
		t.Error("expected error for non-JSON reply")
	}
}

func TestJSONPayload(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"bare object", `{"verdicts": []}`, `{"verdicts": []}`},
		{"object after prose", `Sure: {"keep": "CS101-001"} done`, `{"keep": "CS101-001"}`},
		{"bare array", `[{"id": 1}, {"id": 2}]`, `[{"id": 1}, {"id": 2}]`},
		{"nested object", `{"outer": {"inner": {"deep": true}}}`, `{"outer": {"inner": {"deep": true}}}`},
		{"json fence", "```json\n{\"verdicts\": []}\n```", `{"verdicts": []}`},
		{"plain fence", "```\n{\"verdicts\": []}\n```", `{"verdicts": []}`},
		{"fence with trailing prose", "text\n```json\n{\"a\": 1}\n```\nmore text", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jsonPayload(tt.reply); got != tt.want {
				t.Errorf("jsonPayload() = %q, want %q", got, tt.want)
			}
		})
	}
}
