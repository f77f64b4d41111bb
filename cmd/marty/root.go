package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robotical/go-marty/internal/config"
	"github.com/robotical/go-marty/pkg/marty"
	"github.com/robotical/go-marty/pkg/options"
)

var (
	flagURL     string
	flagTimeout time.Duration

	rootCmd = &cobra.Command{
		Use:   "marty",
		Short: "Control Marty the Robot over socket, serial or test transports",
	}

	discoverCmd = &cobra.Command{
		Use:   "discover",
		Short: "Probe for reachable robots",
		Args:  cobra.NoArgs,
		RunE:  runDiscover,
	}

	helloCmd = &cobra.Command{
		Use:   "hello",
		Short: "Zero joints and wiggle eyebrows",
		Args:  cobra.NoArgs,
		RunE:  withClient(func(c *marty.Client, _ []string) error {
			return c.Hello()
		}),
	}

	walkSteps    int
	walkFoot     string
	walkTurn     int
	walkLength   int
	walkMoveTime int

	walkCmd = &cobra.Command{
		Use:   "walk",
		Short: "Take a few steps",
		Args:  cobra.NoArgs,
		RunE: withClient(func(c *marty.Client, _ []string) error {
			return c.Walk(walkSteps, options.Side(walkFoot), walkTurn,
				walkLength, walkMoveTime)
		}),
	}

	stopCmd = &cobra.Command{
		Use:   "stop [stop-type]",
		Short: "Stop motion; stop-type defaults to \"clear and stop\"",
		Args:  cobra.MaximumNArgs(1),
		RunE: withClient(func(c *marty.Client, args []string) error {
			var st options.StopType
			if len(args) == 1 {
				st = options.StopType(args[0])
			}
			return c.Stop(st)
		}),
	}

	batteryCmd = &cobra.Command{
		Use:   "battery",
		Short: "Read the battery voltage",
		Args:  cobra.NoArgs,
		RunE: withClient(func(c *marty.Client, _ []string) error {
			v, err := c.BatteryVoltage()
			if err != nil {
				return err
			}
			fmt.Printf("%.2f V\n", v)
			return nil
		}),
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url",
		config.URL(config.DefaultURL),
		"connection URL, <scheme>://<location> (env MARTY_URL)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout",
		config.Timeout(config.DefaultTimeout),
		"command round-trip timeout (env MARTY_TIMEOUT)")

	walkCmd.Flags().IntVar(&walkSteps, "steps", 2, "number of steps")
	walkCmd.Flags().StringVar(&walkFoot, "foot", "left", "starting foot")
	walkCmd.Flags().IntVar(&walkTurn, "turn", 0, "turn bias, -128 to 127")
	walkCmd.Flags().IntVar(&walkLength, "step-length", 40, "step length, approx mm")
	walkCmd.Flags().IntVar(&walkMoveTime, "move-time", 1500, "movement duration in ms")

	rootCmd.AddCommand(discoverCmd, helloCmd, walkCmd, stopCmd, batteryCmd)
}

// withClient dials the configured robot, runs fn, and closes the session.
func withClient(fn func(c *marty.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
		defer cancel()

		c, err := marty.Dial(ctx, flagURL, marty.WithTimeout(flagTimeout))
		if err != nil {
			return err
		}
		defer c.Close()
		return fn(c, args)
	}
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()

	locations, err := marty.Discover(ctx, flagURL)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		fmt.Println("no robots found")
		return nil
	}
	for _, loc := range locations {
		fmt.Println(loc)
	}
	return nil
}
