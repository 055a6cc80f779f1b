package command

import (
	"github.com/urfave/cli/v2"
)

// ScriptCommand returns the script command.
func ScriptCommand() *cli.Command {
	return &cli.Command{
		Name:      "script",
		Usage:     "Write the Windows 16 PowerShell helper script",
		ArgsUsage: "[PATH]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "Print the script instead of writing a file",
			},
		},
		Action: scriptAction,
	}
}

func scriptAction(c *cli.Context) error {
	env, err := mustEnv(c)
	if err != nil {
		return err
	}

	helper := env.newHelper()
	if c.Bool("stdout") {
		return helper.RenderScript(env.Out.Writer())
	}

	path := c.Args().First()
	if path == "" {
		path = env.Settings.Compat.ScriptFile
	}
	if err := helper.WriteScript(path); err != nil {
		return err
	}
	env.Out.OK("PowerShell helper script created: %s", path)
	return nil
}
