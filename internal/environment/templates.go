package environment

import (
	"bytes"
	_ "embed"
	"text/template"

	"umbreldev/internal/config"
	"umbreldev/internal/errors"
)

//go:embed templates/Vagrantfile.tmpl
var vagrantfileTemplate string

//go:embed templates/docker-compose.override.yml
var composeOverride []byte

// RenderVagrantfile renders the bundled Vagrantfile template with the
// configured VM resources
func RenderVagrantfile(vm config.VMConfig) ([]byte, error) {
	tmpl, err := template.New("Vagrantfile").Parse(vagrantfileTemplate)
	if err != nil {
		return nil, errors.TemplateRenderError("Vagrantfile", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vm); err != nil {
		return nil, errors.TemplateRenderError("Vagrantfile", err)
	}
	return buf.Bytes(), nil
}

// ComposeOverride returns the bundled compose override, byte for byte
func ComposeOverride() []byte {
	return composeOverride
}
