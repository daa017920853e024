/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	serial "github.com/ttylab/go-serial"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <port>",
	Short: "Display the current line settings of a serial port",
	Long: `Display the line settings a serial port is currently running with.

The port is opened read-only and its live termios state is decoded, so
the values reflect what the kernel is actually using, not what this tool
would configure.

Examples:
  ttyctl info /dev/ttyUSB0
  ttyctl info /dev/ttyACM0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		port, err := serial.Open(portPath, serial.AccessReadOnly)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		s, err := port.Settings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading line settings: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Line settings for %s:\n\n", portPath)
		fmt.Printf("  Input baud:   %s\n", s.InputBaud)
		fmt.Printf("  Output baud:  %s\n", s.OutputBaud)
		fmt.Printf("  Data bits:    %d\n", int(s.DataBits))
		fmt.Printf("  Stop bits:    %d\n", int(s.StopBits))
		fmt.Printf("  Parity:       %s\n", s.Parity)
		fmt.Printf("  Flow control: %s\n", s.FlowControl)
		fmt.Printf("  Blocking:     VMIN=%d VTIME=%d\n", s.Blocking.Bytes, s.Blocking.Deciseconds)
		fmt.Printf("\n  Summary:      %s\n", s)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
