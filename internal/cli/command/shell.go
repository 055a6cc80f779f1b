package command

import (
	"github.com/urfave/cli/v2"
)

// ShellCommand returns the shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Open the management menu over a fresh registry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "import",
				Usage: "Restore VLAN IDs from an export file first",
			},
		},
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
	env, err := mustEnv(c)
	if err != nil {
		return err
	}
	ctx, cancel := env.commandContext(c)
	defer cancel()

	registry := env.newRegistry()
	helper := env.newHelper()

	if path := c.String("import"); path != "" {
		n, err := registry.ImportConfig(ctx, path)
		if err != nil {
			return err
		}
		env.Out.OK("Imported %d VLANs from %s", n, path)
	}

	stop := watchSettings(ctx, env)
	defer stop()
	return runMenu(ctx, env, registry, helper)
}
