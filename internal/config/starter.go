package config

import _ "embed"

// StarterPlan is the template written by "gromark init": a crack plan
// for the unsolved fourth Kryptos panel with the sculpture's keyword
// and a sampled five-digit primer sweep.
//
//go:embed starter.yaml
var StarterPlan string
