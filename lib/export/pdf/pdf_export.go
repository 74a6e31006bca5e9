package pdfexport

import (
	"bytes"
	"html/template"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	cvapimodels "job-portal-backend/models/api/cv"
)

const cvBodyTemplate = `{{if .Title}}<b>{{.Title}}</b><br><br>{{end}}` +
	`{{if .ContactEmail}}Email: {{.ContactEmail}}<br>{{end}}` +
	`{{if .Phone}}Phone: {{.Phone}}<br>{{end}}` +
	`<br><b>Experience</b><br>` +
	`{{range .Experience}}- {{.}}<br>{{else}}No experience listed.<br>{{end}}` +
	`<br><b>Skills</b><br>` +
	`{{if .Skills}}{{join .Skills}}{{else}}No skills listed.{{end}}<br>`

var cvTpl = template.Must(template.New("cv_body").Funcs(template.FuncMap{
	"join": func(list []string) string {
		result := ""
		for k, item := range list {
			if k > 0 {
				result += ", "
			}
			result += item
		}
		return result
	},
}).Parse(cvBodyTemplate))

// GenerateCv renders a candidate profile as a one-column A4 document.
func GenerateCv(cv cvapimodels.CvView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateCv panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(cv.Name), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(cv.Name), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	buf := new(bytes.Buffer)
	if err = cvTpl.Execute(buf, cv); err != nil {
		return nil, err
	}
	pdf.SetFont("Helvetica", "", 12)
	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt*1.5, tr(buf.String()))
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	out := new(bytes.Buffer)
	if err = pdf.Output(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
