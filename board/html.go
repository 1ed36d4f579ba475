package board

import (
	"html/template"
	"io"
)

// ErrorMessage is the only thing shown when the data could not be loaded.
const ErrorMessage = "An error occurred while loading data. Please try again later."

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; margin: 2rem; color: #1a1a2e; }
        .table { border-collapse: collapse; }
        .table td { border: 1px solid #dee2e6; padding: .5rem .75rem; text-align: center; }
        .attempts td { font-weight: 600; background: #f8f9fa; }
        .participant-name { text-align: left; cursor: default; }
        .best { background: #d1f2d9; font-weight: 700; }
        .modal { background: #fff; border: 1px solid #adb5bd; box-shadow: 0 2px 6px rgba(0,0,0,.15); padding: .25rem .5rem; box-sizing: border-box; }
        .modal__text { margin: .25rem 0; font-size: .875rem; }
        .error-message { color: #dc3545; font-weight: 600; }
    </style>
</head>
<body>
{{- if .Table}}
<table class="table">
  <tbody>
    <tr class="attempts">
      <td></td>
      {{- range .Table.Headers}}
      <td{{if eq . $.SummaryTitle}} class="summary"{{end}}>{{.}}</td>
      {{- end}}
    </tr>
    {{- range .Table.Rows}}
    <tr class="participant" data-id="{{.Participant.ID}}">
      <td class="participant-name">{{.Participant.Name}}</td>
      {{- range .Attempts}}
      <td class="attempt attempt-{{.Column}}{{if .Best}} best{{end}}">{{.Text}}</td>
      {{- end}}
      <td class="participant-score{{if .Score.Best}} best{{end}}" data-id="{{.Participant.ID}}">{{.Score.Text}}</td>
    </tr>
    {{- end}}
  </tbody>
</table>
<script>
(function () {
  let hovered = null;

  const removePanel = () => {
    const panel = document.querySelector('.modal');
    if (panel) {
      panel.remove();
    }
  };

  document.querySelectorAll('.participant-name').forEach((cell) => {
    cell.addEventListener('mouseover', async (evt) => {
      const id = evt.target.parentElement.dataset.id;
      hovered = id;
      const rect = evt.target.getBoundingClientRect();
      const params = new URLSearchParams({
        top: rect.top + window.scrollY,
        left: rect.left + window.scrollX,
        width: evt.target.offsetWidth,
        height: evt.target.offsetHeight,
      });
      const response = await fetch('{{.TooltipPrefix}}' + id + '/tooltip?' + params.toString());
      if (!response.ok || hovered !== id) {
        return;
      }
      removePanel();
      document.body.insertAdjacentHTML('beforeend', await response.text());
    });
    cell.addEventListener('mouseout', () => {
      hovered = null;
      removePanel();
    });
  });
})();
</script>
{{- else}}
<div class="error-message">{{.ErrorMessage}}</div>
{{- end}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

type PageOptions struct {
	Title string
	// TooltipPrefix is the path the participant id and "/tooltip" are
	// appended to when fetching a tooltip panel.
	TooltipPrefix string
}

func (o PageOptions) withDefaults() PageOptions {
	if o.Title == "" {
		o.Title = "Leaderboard"
	}
	if o.TooltipPrefix == "" {
		o.TooltipPrefix = "/api/participants/"
	}
	return o
}

type pageData struct {
	Title         string
	TooltipPrefix string
	SummaryTitle  string
	ErrorMessage  string
	Table         *Table
}

// WritePage renders the leaderboard page for a fully marked table.
func WritePage(w io.Writer, t *Table, opts PageOptions) error {
	opts = opts.withDefaults()
	return pageTmpl.Execute(w, pageData{
		Title:         opts.Title,
		TooltipPrefix: opts.TooltipPrefix,
		SummaryTitle:  SummaryTitle,
		Table:         t,
	})
}

// WriteErrorPage renders a page whose only content is the error banner.
func WriteErrorPage(w io.Writer, opts PageOptions) error {
	opts = opts.withDefaults()
	return pageTmpl.Execute(w, pageData{
		Title:        opts.Title,
		ErrorMessage: ErrorMessage,
	})
}
