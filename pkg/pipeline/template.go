package pipeline

import (
	_ "embed"
	"os"

	"github.com/matzehuels/amoor/pkg/errors"
)

// DefaultTemplate is an empty simulation document with the three sections
// the serializer expects.
//
//go:embed templates/model_template.xml
var DefaultTemplate []byte

// loadTemplate resolves the template bytes for opts.
func loadTemplate(opts Options) ([]byte, error) {
	switch {
	case len(opts.Template) > 0:
		return opts.Template, nil
	case opts.TemplatePath == "":
		return DefaultTemplate, nil
	}
	if err := errors.ValidatePath(opts.TemplatePath); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(opts.TemplatePath)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "template %s", opts.TemplatePath)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "read template %s", opts.TemplatePath)
	}
	return data, nil
}
