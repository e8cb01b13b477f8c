package tutor

import (
	"bytes"
	"fmt"
	"text/template"
)

var (
	explainTemplate = template.Must(template.New("explain").Parse(
		"Explain me the {{.Topic}} topic ({{.Thematic}}) in 500 characters please, " +
			"I am a very beginner in software development."))

	evaluateTemplate = template.Must(template.New("evaluate").Parse(
		"I am learning the {{.Topic}} topic." +
			"{{if .Explanation}} Here is the explanation I studied: {{.Explanation}}{{end}}\n" +
			"Here is my answer: {{.Answer}}\n" +
			"Rate my answer from 1 to 10 and explain your rating. " +
			"Write the score exactly once, surrounded by percent signs, for example %7%."))

	correctTemplate = template.Must(template.New("correct").Parse(
		"You explained the {{.Topic}} topic to me like this: {{.Explanation}}\n" +
			"{{.Correction}}\n" +
			"Rewrite the explanation in 500 characters taking this into account, " +
			"I am a very beginner in software development."))
)

// explainData feeds explainTemplate.
type explainData struct {
	Thematic string
	Topic    string
}

// evaluateData feeds evaluateTemplate.
type evaluateData struct {
	Topic       string
	Explanation string
	Answer      string
}

// correctData feeds correctTemplate.
type correctData struct {
	Topic       string
	Explanation string
	Correction  string
}

// render executes tmpl with data.
func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
