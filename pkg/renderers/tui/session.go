package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/blocktales/go-manual/pkg/options"
	"github.com/blocktales/go-manual/pkg/resolve"
)

// Session walks a finalized option set and prompts for each visible option.
type Session struct {
	driver PromptDriver
}

// NewSession builds a prompt session over the supplied driver.
func NewSession(driver PromptDriver) (*Session, error) {
	if driver == nil {
		return nil, fmt.Errorf("tui: prompt driver is required")
	}
	return &Session{driver: driver}, nil
}

// Fill prompts for every visible option in registry order and returns the
// collected values. Hidden options resolve to their defaults without a
// prompt.
func (s *Session) Fill(ctx context.Context, reg *options.Registry) (resolve.Values, error) {
	if reg == nil {
		return nil, fmt.Errorf("tui: registry is required")
	}

	values := make(resolve.Values, reg.Len())
	for _, def := range reg.Definitions() {
		if def.Hidden() {
			values[def.Key] = def.DefaultValue()
			continue
		}
		value, err := s.ask(ctx, def)
		if err != nil {
			return nil, err
		}
		values[def.Key] = value
	}
	return values, nil
}

func (s *Session) ask(ctx context.Context, def options.Definition) (any, error) {
	help := firstLine(def.Description)
	switch def.Kind {
	case options.KindToggle, options.KindDefaultOnToggle:
		return s.driver.Confirm(ctx, ConfirmConfig{
			Message: def.Label() + "?",
			Default: def.DefaultOn,
			Help:    help,
		})
	case options.KindChoice:
		labels := make([]string, 0, len(def.Choices))
		defaultIndex := 0
		for i, c := range def.Choices {
			labels = append(labels, c.Label)
			if c.Code == def.Default {
				defaultIndex = i
			}
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      def.Label(),
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         help,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(def.Choices) {
			return nil, fmt.Errorf("tui: option %q selection out of range", def.Key)
		}
		return def.Choices[idx].Code, nil
	case options.KindRange:
		raw, err := s.driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("%s (%d to %d)", def.Label(), def.RangeStart, def.RangeEnd),
			Default:   strconv.Itoa(def.Default),
			Help:      help,
			Validator: rangeValidator(def),
		})
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("tui: option %q wants an integer: %w", def.Key, err)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("tui: option %q has unknown kind %q", def.Key, def.Kind)
	}
}

func rangeValidator(def options.Definition) func(string) error {
	return func(raw string) error {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("enter an integer")
		}
		if n < def.RangeStart || n > def.RangeEnd {
			return fmt.Errorf("value must be between %d and %d", def.RangeStart, def.RangeEnd)
		}
		return nil
	}
}

func firstLine(description string) string {
	line, _, _ := strings.Cut(description, "\n")
	return strings.TrimSpace(line)
}
