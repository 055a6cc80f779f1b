package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/whitehole-go/internal/cli/config"
)

// ValidateCommand returns the validate command.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a device configuration file for Windows 16 support",
		ArgsUsage: "[FILE]",
		Action:    validateAction,
	}
}

func validateAction(c *cli.Context) error {
	env, err := mustEnv(c)
	if err != nil {
		return err
	}
	ctx, cancel := env.commandContext(c)
	defer cancel()

	path := c.Args().First()
	if path == "" {
		path = env.Settings.Device.ConfigFile
	}

	device, err := config.LoadDeviceConfig(path)
	if err != nil {
		return err
	}

	helper := env.newHelper()
	if err := helper.Initialize(ctx); err != nil {
		return err
	}
	if err := helper.ValidateConfig(device.Raw); err != nil {
		env.Out.Fail("Windows 16 configuration validation failed")
		return fmt.Errorf("%s: %w", path, err)
	}

	env.Out.OK("Windows 16 configuration is valid: %s", path)
	if device.Info.DeviceID != "" {
		env.Out.Println("  Device ID: %s", device.Info.DeviceID)
	}
	return nil
}
