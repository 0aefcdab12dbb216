package core

import (
	"fmt"
	"strings"
)

type Phase string

const (
	PhaseInit    Phase = "init"
	PhaseBuild   Phase = "build"
	PhasePublish Phase = "publish"
)

var Phases = []Phase{PhaseInit, PhaseBuild, PhasePublish}

type MissingPolicy int

const (
	MissingFail MissingPolicy = iota
	MissingSkip
)

func (p MissingPolicy) String() string {
	if p == MissingSkip {
		return "skip"
	}
	return "fail"
}

func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail":
		return MissingFail, nil
	case "skip":
		return MissingSkip, nil
	default:
		return MissingFail, fmt.Errorf("unknown missing-source policy %q (want fail or skip)", s)
	}
}
