package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
)

const workloadsTmpl = `{{range .}}Name: {{.Name}}, Id: {{.ID}}
{{end}}`

const profilesTmpl = `{{range .}}{{.}}
{{end}}`

// Reporter renders listings to the console in a line-per-item text form.
type Reporter struct {
	writer    io.Writer
	workloads *template.Template
	profiles  *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer:    writer,
		workloads: template.Must(template.New("workloads").Parse(workloadsTmpl)),
		profiles:  template.Must(template.New("profiles").Parse(profilesTmpl)),
	}
}

func (r *Reporter) HandleWorkloads(workloads []domain.WorkloadSummary) error {
	if err := r.workloads.Execute(r.writer, workloads); err != nil {
		return fmt.Errorf("failed to render workloads: %w", err)
	}
	return nil
}

func (r *Reporter) HandleProfiles(profiles []domain.ConfigProfile) error {
	if err := r.profiles.Execute(r.writer, profiles); err != nil {
		return fmt.Errorf("failed to render profiles: %w", err)
	}
	return nil
}
