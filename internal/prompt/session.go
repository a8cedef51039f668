package prompt

import (
	"context"
	"fmt"
	"strings"
)

// Answers holds what the user picked during a Session.
type Answers struct {
	Expression string
	Style      string
	Paren      bool
}

// Session asks for a unit expression, a style and the wrapping flag.
type Session struct {
	Driver   Driver
	Styles   []string
	Style    string
	Validate func(expr string) error
}

// Run walks the user through the prompts.
func (s Session) Run(ctx context.Context) (Answers, error) {
	if s.Driver == nil {
		return Answers{}, fmt.Errorf("prompt: driver is required")
	}
	if len(s.Styles) == 0 {
		return Answers{}, ErrNoStyles
	}

	expr, err := s.Driver.Input(ctx, InputConfig{
		Message: "Unit expression",
		Help:    `Canonical form, e.g. kg*m**2/s**2 or mol/L`,
		Validator: func(value string) error {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("expression is required")
			}
			if s.Validate != nil {
				return s.Validate(value)
			}
			return nil
		},
	})
	if err != nil {
		return Answers{}, err
	}

	idx, err := s.Driver.Select(ctx, SelectConfig{
		Message:      "Style",
		Options:      s.Styles,
		DefaultIndex: indexOf(s.Styles, s.Style),
	})
	if err != nil {
		return Answers{}, err
	}
	if idx < 0 || idx >= len(s.Styles) {
		return Answers{}, fmt.Errorf("prompt: style selection %d out of range", idx)
	}

	paren, err := s.Driver.Confirm(ctx, ConfirmConfig{
		Message: "Wrap in parentheses?",
	})
	if err != nil {
		return Answers{}, err
	}

	return Answers{
		Expression: strings.TrimSpace(expr),
		Style:      s.Styles[idx],
		Paren:      paren,
	}, nil
}
