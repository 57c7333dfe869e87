package registry

import (
	"strconv"
	"strings"

	"github.com/puccinia/befunge-tui/internal/ferr"
	"github.com/puccinia/befunge-tui/internal/proto"
)

// buildProperties mirrors original_source/src/frontend/command.rs's
// init_properties() (spec §4.5.1).
func buildProperties() []Property {
	return []Property{
		{
			Name:        "heat",
			Args:        []Arg{{Name: "toggle", Optional: false, Type: ArgBoolean}},
			Description: "Heat toggle",
			Setter: func(args []string, ctx Context, send chan<- proto.ToInterpreter) error {
				v, err := strconv.ParseBool(args[0])
				if err != nil {
					return ferr.Command(&ferr.CommandError{Kind: ferr.CommandInvalidArguments, Args: args, Name: "heat"})
				}
				ctx.SetHeatEnabled(v)
				return nil
			},
		},
		{
			Name:        "live_output",
			Args:        []Arg{{Name: "toggle", Optional: false, Type: ArgBoolean}},
			Description: "Live output toggle",
			Setter: func(args []string, ctx Context, send chan<- proto.ToInterpreter) error {
				v, err := strconv.ParseBool(args[0])
				if err != nil {
					return ferr.Command(&ferr.CommandError{Kind: ferr.CommandInvalidArguments, Args: args, Name: "live_output"})
				}
				return ctx.SetLiveOutput(v)
			},
		},
		{
			Name:        "heat_diffusion",
			Args:        []Arg{{Name: "value", Optional: false, Type: ArgNumber}},
			Description: "Heat diffusion per step",
			Setter: func(args []string, ctx Context, send chan<- proto.ToInterpreter) error {
				if InferArgType(args[0]) != ArgNumber {
					return ferr.Command(&ferr.CommandError{Kind: ferr.CommandInvalidArguments, Args: args, Name: "heat_diffusion"})
				}
				send <- proto.UpdateProperty{Name: "heat_diffusion", Value: args[0]}
				return nil
			},
		},
		{
			Name:        "view_updates",
			Args:        []Arg{{Name: "mode", Optional: false, Type: ArgString}},
			Description: "View update mode (none, partial, all)",
			Setter: func(args []string, ctx Context, send chan<- proto.ToInterpreter) error {
				if _, ok := proto.ParseViewUpdates(strings.ToLower(args[0])); !ok {
					return ferr.Command(&ferr.CommandError{Kind: ferr.CommandInvalidArguments, Args: args, Name: "view_updates"})
				}
				send <- proto.UpdateProperty{Name: "view_updates", Value: strings.ToLower(args[0])}
				return nil
			},
		},
		{
			Name:        "step_ms",
			Args:        []Arg{{Name: "value", Optional: false, Type: ArgNumber}},
			Description: "Added milliseconds of sleep between steps",
			Setter: func(args []string, ctx Context, send chan<- proto.ToInterpreter) error {
				if InferArgType(args[0]) != ArgNumber {
					return ferr.Command(&ferr.CommandError{Kind: ferr.CommandInvalidArguments, Args: args, Name: "step_ms"})
				}
				send <- proto.UpdateProperty{Name: "step_ms", Value: args[0]}
				return nil
			},
		},
	}
}

