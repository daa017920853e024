/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	serial "github.com/ttylab/go-serial"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ttyctl",
	Short: "Configure and talk to serial ports",
	Long: `ttyctl opens serial devices in raw mode and lets you inspect
and change their line settings, send and receive data, and drive the
modem control lines.

Line settings can be given as flags, environment variables (TTYCTL_BAUD,
TTYCTL_PARITY, ...) or a config file, in that order of precedence.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ttyctl.yaml)")
	rootCmd.PersistentFlags().IntP("baud", "b", 115200, "Baud rate")
	rootCmd.PersistentFlags().Int("data-bits", 8, "Data bits per character: 5, 6, 7 or 8")
	rootCmd.PersistentFlags().Int("stop-bits", 1, "Stop bits: 1 or 2")
	rootCmd.PersistentFlags().String("parity", "none", "Parity: none, odd or even")
	rootCmd.PersistentFlags().StringP("flow-control", "f", "none", "Flow control: none, software or hardware")

	viper.BindPFlag("baud", rootCmd.PersistentFlags().Lookup("baud"))
	viper.BindPFlag("data-bits", rootCmd.PersistentFlags().Lookup("data-bits"))
	viper.BindPFlag("stop-bits", rootCmd.PersistentFlags().Lookup("stop-bits"))
	viper.BindPFlag("parity", rootCmd.PersistentFlags().Lookup("parity"))
	viper.BindPFlag("flow-control", rootCmd.PersistentFlags().Lookup("flow-control"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ttyctl")
	}

	viper.SetEnvPrefix("ttyctl")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// lineOptions builds the port options from the resolved line settings.
func lineOptions() ([]serial.Option, error) {
	baud, err := parseBaudRate(viper.GetInt("baud"))
	if err != nil {
		return nil, err
	}

	parity, err := parseParity(viper.GetString("parity"))
	if err != nil {
		return nil, err
	}

	flow, err := parseFlowControl(viper.GetString("flow-control"))
	if err != nil {
		return nil, err
	}

	return []serial.Option{
		serial.WithBaudRate(baud),
		serial.WithDataBits(serial.DataBits(viper.GetInt("data-bits"))),
		serial.WithStopBits(serial.StopBits(viper.GetInt("stop-bits"))),
		serial.WithParity(parity),
		serial.WithFlowControl(flow),
	}, nil
}

func openPort(path string, access serial.Access) (*serial.Port, error) {
	opts, err := lineOptions()
	if err != nil {
		return nil, err
	}
	return serial.Open(path, access, opts...)
}

func parseBaudRate(n int) (serial.BaudRate, error) {
	rate, ok := serial.LookupBaudRate(n)
	if !ok {
		return 0, fmt.Errorf("unsupported baud rate %d", n)
	}
	return rate, nil
}

func parseParity(s string) (serial.Parity, error) {
	switch strings.ToLower(s) {
	case "none", "n":
		return serial.ParityNone, nil
	case "odd", "o":
		return serial.ParityOdd, nil
	case "even", "e":
		return serial.ParityEven, nil
	default:
		return 0, fmt.Errorf("unknown parity %q", s)
	}
}

func parseFlowControl(s string) (serial.FlowControl, error) {
	switch strings.ToLower(s) {
	case "none":
		return serial.FlowControlNone, nil
	case "software", "xonxoff":
		return serial.FlowControlSoftware, nil
	case "hardware", "rtscts":
		return serial.FlowControlHardware, nil
	default:
		return 0, fmt.Errorf("unknown flow control %q", s)
	}
}
