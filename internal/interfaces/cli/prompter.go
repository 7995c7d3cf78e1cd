package cli

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/jhoicas/control-stock/internal/domain"
)

// Prompter abstrae la interacción con el usuario. Cada método devuelve domain.ErrCancelled
// cuando el usuario interrumpe la pregunta; una respuesta vacía no es una cancelación.
type Prompter interface {
	Select(message string, options []string) (string, error)
	Input(message string) (string, error)
	Confirm(message string) (bool, error)
}

// SurveyPrompter implementa Prompter sobre github.com/AlecAivazis/survey/v2.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

var _ Prompter = (*SurveyPrompter)(nil)

// NewSurveyPrompter construye el prompter. Sin opciones usa stdin/stdout/stderr.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

func (p *SurveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	q := &survey.Select{Message: message, Options: options, PageSize: 10}
	if err := survey.AskOne(q, &answer, p.opts...); err != nil {
		return "", mapSurveyErr(err)
	}
	return answer, nil
}

func (p *SurveyPrompter) Input(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, p.opts...); err != nil {
		return "", mapSurveyErr(err)
	}
	return answer, nil
}

func (p *SurveyPrompter) Confirm(message string) (bool, error) {
	var answer bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &answer, p.opts...); err != nil {
		return false, mapSurveyErr(err)
	}
	return answer, nil
}

// Ctrl-C y fin de entrada cuentan como cancelación.
func mapSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return domain.ErrCancelled
	}
	return err
}
