// Command wowgen generates Go message codecs from a WoW protocol IR.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"

	"github.com/gstoney/wowproto/codegen"
	"github.com/gstoney/wowproto/config"
	"github.com/gstoney/wowproto/logging"
	"github.com/gstoney/wowproto/schema"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", config.DefaultPath, "config file")
	schemaPath := flag.String("schema", "", "IR path, overrides the config")
	out := flag.String("out", "", "output directory, overrides the config")
	verbose := flag.Bool("v", false, "debug logging")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *schemaPath != "" {
		cfg.Schema = *schemaPath
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	closer, err := logging.Init(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closer.Close()

	v := config.Validate(cfg)
	for _, w := range v.Warnings {
		log.Warn().Str("field", w.Field).Msg(w.Message)
	}
	if !v.IsValid() {
		for _, e := range v.Errors {
			log.Error().Str("field", e.Field).Msg(e.Message)
		}
		return 1
	}

	ir, err := schema.Load(cfg.Schema)
	if err != nil {
		log.Error().Err(err).Msg("load schema")
		return 1
	}

	res, err := codegen.New(cfg.Codegen(), logging.Component("codegen")).Generate(ir)
	if err != nil {
		log.Error().Err(err).Msg("generate")
		return 1
	}
	if err := res.WriteFiles(cfg.Output); err != nil {
		log.Error().Err(err).Msg("write output")
		return 1
	}

	printReport(os.Stdout, res)

	if len(res.Diagnostics) > 0 {
		for _, d := range res.Diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
		return 1
	}
	return 0
}

func printReport(w io.Writer, res *codegen.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Unit", "Emitted", "Linked", "Excluded", "Failed"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)

	var total codegen.UnitReport
	for _, u := range res.Units {
		table.Append([]string{
			u.Unit,
			strconv.Itoa(u.Emitted),
			strconv.Itoa(u.Linked),
			strconv.Itoa(u.Excluded),
			strconv.Itoa(u.Failed),
		})
		total.Emitted += u.Emitted
		total.Linked += u.Linked
		total.Excluded += u.Excluded
		total.Failed += u.Failed
	}
	table.SetFooter([]string{
		"total",
		strconv.Itoa(total.Emitted),
		strconv.Itoa(total.Linked),
		strconv.Itoa(total.Excluded),
		strconv.Itoa(total.Failed),
	})
	table.Render()
	fmt.Fprintf(w, "run %s\n", res.RunID)
}
