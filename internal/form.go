package internal

import (
	"cpay/entity"
	"html/template"
	"io"
)

// NewForm describes the hidden-field form posted to CPay: one field per map
// entry in map order, then the checksum fields when a checksum exists.
func NewForm(fields *entity.FieldMap, result *entity.ChecksumResult, isProduction bool) *entity.Form {
	form := &entity.Form{
		Name:    cpayFormName,
		Method:  cpayFormMethod,
		Action:  actionUrl(isProduction),
		EncType: cpayFormEncType,
		Fields:  fields.Fields(),
	}
	if result != nil {
		form.Fields = append(form.Fields,
			entity.Field{Name: FieldCheckSum, Value: result.CheckSum},
			entity.Field{Name: FieldCheckSumHeader, Value: result.Header},
		)
	}
	return form
}

func actionUrl(isProduction bool) string {
	if isProduction {
		return cpayProdUrl
	}
	return cpayTestUrl
}

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Name}}</title></head>
<body onload="document.forms[0].submit()">
<form name="{{.Name}}" method="{{.Method}}" action="{{.Action}}" enctype="{{.EncType}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue</button></noscript>
</form>
</body>
</html>
`))

// RenderHTML writes a page that submits the form as soon as it is loaded.
func RenderHTML(w io.Writer, form *entity.Form) error {
	return formTemplate.Execute(w, form)
}
