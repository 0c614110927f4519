// Copyright 2026 The gocap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/openjavacard/gocap/cap"
	"github.com/openjavacard/gocap/zipfile"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "gocap",
})

var (
	flagOutput string
	flagHex    bool
	flagPrefix string
)

var rootCmd = &cobra.Command{
	Use:           "gocap",
	Short:         "Inspect and convert Java Card CAP files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var infoCmd = &cobra.Command{
	Use:   "info <file.cap>",
	Short: "Show package and applet identifiers of a CAP file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var loadfileCmd = &cobra.Command{
	Use:   "loadfile <file.cap>",
	Short: "Extract the executable loadfile from a CAP file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadfile,
}

var splitCmd = &cobra.Command{
	Use:   "split <file.ijc> <out.cap>",
	Short: "Convert a flat IJC file back into a CAP archive",
	Args:  cobra.ExactArgs(2),
	RunE:  runSplit,
}

func init() {
	loadfileCmd.Flags().StringVarP(
		&flagOutput,
		"output",
		"o",
		"-",
		"output file path (use '-' for stdout)",
	)
	loadfileCmd.Flags().BoolVar(
		&flagHex,
		"hex",
		false,
		"emit the loadfile as a lowercase hex string",
	)
	splitCmd.Flags().StringVar(
		&flagPrefix,
		"prefix",
		"package",
		"entry name prefix inside the produced CAP archive",
	)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(loadfileCmd)
	rootCmd.AddCommand(splitCmd)
}

func openCapFile(path string) (*cap.CapFile, error) {
	src, err := zipfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return cap.NewCapFile(src)
}

func runInfo(cmd *cobra.Command, args []string) error {
	capFile, err := openCapFile(args[0])
	if err != nil {
		return err
	}
	header, err := capFile.Header()
	if err != nil {
		return err
	}
	fmt.Printf(
		"CAP format version: %d.%d\n",
		header.MajorVersion,
		header.MinorVersion,
	)
	fmt.Printf("Package AID:        %x\n", header.Package.AID)
	if len(header.PackageName) > 0 {
		fmt.Printf("Package name:       %s\n", header.PackageName)
	}
	applets, err := capFile.Applets()
	if err != nil {
		// The Applet component is optional; its absence is worth a
		// warning but not a failure.
		var missingErr *cap.MissingOptionalComponentError
		if errors.As(err, &missingErr) {
			logger.Warn("no applet info", "error", err)
			return nil
		}
		return err
	}
	for i, applet := range applets.Applets {
		fmt.Printf("Applet %d AID:       %x\n", i, applet.AID)
	}
	return nil
}

func runLoadfile(cmd *cobra.Command, args []string) error {
	capFile, err := openCapFile(args[0])
	if err != nil {
		return err
	}
	loadfile := capFile.Loadfile()
	var out []byte
	if flagHex {
		out = []byte(hex.EncodeToString(loadfile) + "\n")
	} else {
		out = loadfile
	}
	if flagOutput == "-" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(flagOutput, out, 0o644); err != nil {
		return err
	}
	logger.Info(
		"wrote loadfile",
		"path", flagOutput,
		"bytes", len(loadfile),
	)
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	stream, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	outFile, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer outFile.Close()
	sink := zipfile.NewSink(outFile)
	if err := cap.WriteIJC(stream, flagPrefix, sink); err != nil {
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}
	logger.Info("wrote CAP archive", "path", args[1])
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
