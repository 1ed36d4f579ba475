package tooltip

import (
	"html/template"
	"io"
	"strconv"
)

var panelTmpl = template.Must(template.New("panel").Funcs(template.FuncMap{
	"px": px,
}).Parse(`<div class="modal" id="tooltip-{{.ID}}" data-participant="{{.ParticipantID}}" style="position: absolute; top: {{px .Top}}; left: {{px .Left}}; width: {{px .Width}};">
  <p class="modal__text">{{.City}}</p>
  <p class="modal__text">{{.Car}}</p>
</div>`))

func px(v float64) template.CSS {
	return template.CSS(strconv.FormatFloat(v, 'f', -1, 64) + "px")
}

// WriteHTML renders the panel as the fragment the leaderboard page inserts
// into its body.
func WriteHTML(w io.Writer, p Panel) error {
	return panelTmpl.Execute(w, p)
}
