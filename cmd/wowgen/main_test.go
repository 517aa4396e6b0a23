package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gstoney/wowproto/codegen"
)

func TestPrintReport(t *testing.T) {
	res := &codegen.Result{
		RunID: uuid.New(),
		Units: []codegen.UnitReport{
			{Unit: "login/all", Emitted: 3},
			{Unit: "login/version3", Emitted: 4, Linked: 2, Excluded: 1, Failed: 1},
		},
	}

	var buf bytes.Buffer
	printReport(&buf, res)

	out := buf.String()
	for _, want := range []string{"UNIT", "login/version3", "TOTAL", res.RunID.String()} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q:\n%s", want, out)
		}
	}
}
