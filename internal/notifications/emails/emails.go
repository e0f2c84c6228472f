// Package emails renders the pending-tasks digest email.
package emails

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/ccarella/app.charmverse.io/internal/notifications/models"
)

var digestTemplate = template.Must(template.New("pending-tasks").Parse(pendingTasksTemplate))

type taskRow struct {
	Title    string
	Subtitle string
	Action   string
	URL      string
}

type section struct {
	Heading string
	Tasks   []taskRow
}

type templateData struct {
	GreetingName string
	TotalTasks   int
	Sections     []section
	BaseURL      string
}

// Subject is the digest email subject line.
func Subject(digest models.Digest) string {
	count := digest.TotalTasks()
	if count == 1 {
		return "1 task needs your attention"
	}
	return fmt.Sprintf("%d tasks need your attention", count)
}

// RenderPendingTasks renders the HTML body for a digest. Only non-empty
// categories produce a section.
func RenderPendingTasks(digest models.Digest, baseURL string) (string, error) {
	data := templateData{
		GreetingName: digest.User.DisplayName(),
		TotalTasks:   digest.TotalTasks(),
		BaseURL:      strings.TrimRight(baseURL, "/"),
	}

	if len(digest.MultisigTasks) > 0 {
		sec := section{Heading: "Multisig transactions"}
		for _, task := range digest.MultisigTasks {
			head := task.Tasks[0].Transactions[0]
			sec.Tasks = append(sec.Tasks, taskRow{
				Title:    safeName(task.SafeName, task.SafeAddress),
				Subtitle: head.Description,
				Action:   titleCase(head.MyAction),
				URL:      head.MyActionURL,
			})
		}
		data.Sections = append(data.Sections, sec)
	}

	if len(digest.MentionTasks) > 0 {
		sec := section{Heading: "Mentions"}
		for _, task := range digest.MentionTasks {
			sec.Tasks = append(sec.Tasks, taskRow{
				Title:    task.PageTitle,
				Subtitle: fmt.Sprintf("%s mentioned you: %s", task.CreatedBy, task.Text),
				Action:   "View",
				URL:      data.BaseURL + "/" + task.SpaceDomain + "/" + task.PagePath,
			})
		}
		data.Sections = append(data.Sections, sec)
	}

	if len(digest.VoteTasks) > 0 {
		sec := section{Heading: "Votes"}
		for _, task := range digest.VoteTasks {
			sec.Tasks = append(sec.Tasks, taskRow{
				Title:    task.Title,
				Subtitle: fmt.Sprintf("%s · %s", task.SpaceName, task.PageTitle),
				Action:   "Vote",
				URL:      data.BaseURL + "/" + task.SpaceDomain + "/" + task.PagePath,
			})
		}
		data.Sections = append(data.Sections, sec)
	}

	if len(digest.ProposalTasks) > 0 {
		sec := section{Heading: "Proposals"}
		for _, task := range digest.ProposalTasks {
			sec.Tasks = append(sec.Tasks, taskRow{
				Title:    task.PageTitle,
				Subtitle: task.SpaceName,
				Action:   task.Action.Label(),
				URL:      data.BaseURL + "/" + task.SpaceDomain + "/" + task.PagePath,
			})
		}
		data.Sections = append(data.Sections, sec)
	}

	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render pending tasks email: %w", err)
	}
	return buf.String(), nil
}

func titleCase(action string) string {
	if action == "" {
		return "View"
	}
	return strings.ToUpper(action[:1]) + action[1:]
}

func safeName(name, address string) string {
	if name != "" {
		return name
	}
	if len(address) > 10 {
		return address[:6] + "…" + address[len(address)-4:]
	}
	return address
}

const pendingTasksTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Pending tasks</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 2px solid #009fb7; padding-bottom: 10px; margin-bottom: 20px; }
        .section { margin-bottom: 28px; }
        .section h3 { margin-bottom: 8px; border-bottom: 1px solid #eee; padding-bottom: 4px; }
        .task { padding: 8px 0; }
        .task .subtitle { color: #666; font-size: 13px; }
        .button { display: inline-block; padding: 6px 14px; background: #009fb7; color: white; text-decoration: none; border-radius: 4px; font-size: 13px; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>CharmVerse</h1>
    </div>

    <h2>Hi {{.GreetingName}},</h2>

    <p>You have {{.TotalTasks}} pending task{{if ne .TotalTasks 1}}s{{end}} waiting for you.</p>

    {{range .Sections}}
    <div class="section">
        <h3>{{.Heading}}</h3>
        {{range .Tasks}}
        <div class="task">
            <div><strong>{{.Title}}</strong></div>
            {{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
            {{if .URL}}<a href="{{.URL}}" class="button">{{.Action}}</a>{{end}}
        </div>
        {{end}}
    </div>
    {{end}}

    <div class="footer">
        <p>You are receiving this because you have pending tasks in your workspaces.
        Snooze notifications from your <a href="{{.BaseURL}}/profile/tasks">task list</a>.</p>
    </div>
</body>
</html>`
