package chatgpt

import (
	"bytes"
	"text/template"
)

const systemPrompt = "You are a helpful assistant that generates actionable daily tasks based on long-term goals."

var promptTemplate = template.Must(template.New("task").Parse(`Based on this specific goal, generate ONE small, actionable daily task that would help progress toward it.

Selected Goal:
{{.Goal}}

The task should be detailed and specific, and something that can be done within 15 minutes. The tone should be friendly and engaging.

For example, if the goal is to "Learn to code", a task could be "Work on a leetcode challenge!"

Please generate:
1. A concise, actionable task title (max 6 words, avoid using "Today" or "Daily" or "For X minutes")
2. A brief description explaining how to accomplish this task (max 2 sentences, do not use "Today" or "Daily" or "For X minutes")

Format your response as JSON:
{
    "title": "task title here",
    "description": "description here"
}
`))

type promptData struct {
	Goal string
}

func buildPrompt(goal string) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, promptData{Goal: goal}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
