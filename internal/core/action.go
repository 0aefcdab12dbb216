package core

import (
	"fmt"
	"strings"
)

type Action int

const (
	ActionCopy Action = iota + 1
	ActionRenderMarkdown
	ActionRenderTemplate
)

func (a Action) Verb() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionRenderMarkdown:
		return "markdown"
	case ActionRenderTemplate:
		return "mustache"
	default:
		return "unknown"
	}
}

func (a Action) String() string {
	return a.Verb()
}

func (a Action) Valid() bool {
	return a >= ActionCopy && a <= ActionRenderTemplate
}

// ParseAction accepts the diagnostic verbs plus "template" as an alias for
// mustache rendering.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copy":
		return ActionCopy, nil
	case "markdown", "md":
		return ActionRenderMarkdown, nil
	case "mustache", "template":
		return ActionRenderTemplate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}
