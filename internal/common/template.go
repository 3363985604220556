package common

import (
	"bytes"
	"html/template"
)

// ExecuteTemplate renders an HTML template. Values are escaped for the context they appear in.
func ExecuteTemplate(name, source string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(source)
	if err != nil {
		return "", err
	}

	buffer := bytes.NewBuffer(nil)
	err = tmpl.Execute(buffer, data)
	if err != nil {
		return "", err
	}

	return buffer.String(), nil
}
