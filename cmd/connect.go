/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	serial "github.com/ttylab/go-serial"
	"github.com/ttylab/go-serial/internal/tui"
)

// connectCmd represents the connect command
var connectCmd = &cobra.Command{
	Use:   "connect <port>",
	Short: "Open an interactive terminal session on a serial port",
	Long: `Open an interactive terminal session with real-time display of port traffic.

Incoming and outgoing data is shown with timestamps; press 'i' to enter
insert mode and type a line, enter sends it to the port. Display modes
can be toggled at runtime:
  h - toggle hex display
  a - toggle ascii display
  t - toggle timestamps
  c - clear the buffer
  ? - help
  q - quit

Example usage:
  ttyctl connect /dev/ttyUSB0
  ttyctl connect /dev/ttyUSB0 --baud 9600 --parity even
  ttyctl connect /dev/ttyUSB0 --no-newline`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]
		noNewline, _ := cmd.Flags().GetBool("no-newline")

		port, err := openPort(portPath, serial.AccessReadWrite)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}

		settings, err := port.Settings()
		if err != nil {
			port.Close()
			fmt.Fprintf(os.Stderr, "Error reading line settings: %v\n", err)
			os.Exit(1)
		}

		if err := tui.Run(port, portPath, settings.String(), !noNewline); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)

	connectCmd.Flags().Bool("no-newline", false, "Do not append a newline to sent lines")
}
