package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/whitehole-go/internal/compat"
)

// CapabilitiesCommand returns the capabilities command.
func CapabilitiesCommand() *cli.Command {
	return &cli.Command{
		Name:    "capabilities",
		Aliases: []string{"caps"},
		Usage:   "Show the Windows 16 capability descriptor",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "profile",
				Usage: "Show the full profile including performance figures",
			},
		},
		Action: capabilitiesAction,
	}
}

func capabilitiesAction(c *cli.Context) error {
	env, err := mustEnv(c)
	if err != nil {
		return err
	}

	caps := env.newHelper().Capabilities()
	if c.Bool("profile") || env.Settings.CLI.Output != "table" {
		return env.Formatter.Format(env.Out.Writer(), caps)
	}

	env.Out.Section("Windows 16 Capabilities")
	printCapabilities(env.Out, caps)
	printServices(env, caps)
	return nil
}

func printServices(env *Env, caps compat.Capabilities) {
	env.Out.Println("  Services:")
	for _, svc := range caps.Services {
		env.Out.Println("    - %s", svc)
	}
}
