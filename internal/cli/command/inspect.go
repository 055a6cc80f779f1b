package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/whitehole-go/internal/core/domain"
)

// inspectPageSize bounds how many VLANs are listed per page.
const inspectPageSize = 1000

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Import an export file into a fresh registry and report its contents",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List the restored VLANs",
			},
		},
		Action: inspectAction,
	}
}

// inspectReport is the machine-readable inspect result.
type inspectReport struct {
	File     string       `json:"file" yaml:"file"`
	Imported int          `json:"imported" yaml:"imported"`
	Stats    domain.Stats `json:"stats" yaml:"stats"`
	VLANs    []int        `json:"vlans,omitempty" yaml:"vlans,omitempty"`
}

func inspectAction(c *cli.Context) error {
	env, err := mustEnv(c)
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return fmt.Errorf("inspect requires exactly one export file")
	}
	ctx, cancel := env.commandContext(c)
	defer cancel()

	path := c.Args().First()
	registry := env.newRegistry()
	n, err := registry.ImportConfig(ctx, path)
	if err != nil {
		return err
	}

	var vlans []*domain.VLAN
	if c.Bool("list") {
		for from := domain.MinVLANID; ; {
			page := registry.ListVLANs(ctx, from, inspectPageSize)
			vlans = append(vlans, page...)
			if len(page) < inspectPageSize {
				break
			}
			from = page[len(page)-1].ID + 1
		}
	}

	if env.Settings.CLI.Output != "table" {
		report := inspectReport{File: path, Imported: n, Stats: registry.Stats(ctx)}
		for _, v := range vlans {
			report.VLANs = append(report.VLANs, v.ID)
		}
		return env.Formatter.Format(env.Out.Writer(), report)
	}

	env.Out.OK("Imported %d VLANs from %s", n, path)
	env.Out.Println("")
	env.Out.Section("Statistics")
	printFinalStats(env.Out, registry.Stats(ctx))
	if len(vlans) > 0 {
		env.Out.Println("")
		return env.Formatter.Format(env.Out.Writer(), vlans)
	}
	return nil
}
