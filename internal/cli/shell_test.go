package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vipcxj/bounded/internal/bounded"
)

func TestExportValue(t *testing.T) {
	b, err := bounded.Parse([]string{"10[9,12]", "3"})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		shell   ShellType
		formats []string
		persist bool
		want    string
	}{
		{
			"sh", ShellTypeSh, []string{"space"}, false,
			"LEN='10[9,12] 3'\nLEN_LOWER='9 3'\nLEN_UPPER='12 3'",
		},
		{
			"sh_persist_comma", ShellTypeSh, []string{"comma"}, true,
			"export LEN='10[9,12],3'\nexport LEN_LOWER='9,3'\nexport LEN_UPPER='12,3'",
		},
		{
			"powershell_newline", ShellTypePowershell, []string{"newline"}, false,
			"$Env:LEN = '10[9,12]' + \"`n\" + '3'\n$Env:LEN_LOWER = '9' + \"`n\" + '3'\n$Env:LEN_UPPER = '12' + \"`n\" + '3'",
		},
		{
			"powershell_persist", ShellTypePowershell, []string{"space"}, true,
			"[System.Environment]::SetEnvironmentVariable('LEN','10[9,12] 3','User')\n" +
				"[System.Environment]::SetEnvironmentVariable('LEN_LOWER','9 3','User')\n" +
				"[System.Environment]::SetEnvironmentVariable('LEN_UPPER','12 3','User')",
		},
		{
			"cmd_json", ShellTypeCmd, []string{"json"}, false,
			`set "LEN=[\"10[9,12]\",\"3\"]"` + "\n" + `set "LEN_LOWER=[\"9\",\"3\"]"` + "\n" + `set "LEN_UPPER=[\"12\",\"3\"]"`,
		},
		{
			"cmd_persist", ShellTypeCmd, []string{"comma"}, true,
			"setx LEN \"10[9,12],3\"\nsetx LEN_LOWER \"9,3\"\nsetx LEN_UPPER \"12,3\"",
		},
	}

	for _, tc := range cases {
		got, err := ExportValue(tc.shell, "len", b, tc.formats, tc.persist)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got\n%s\nwant\n%s", tc.name, got, tc.want)
		}
	}
}

func TestExportValue_Infinity(t *testing.T) {
	b, err := bounded.Parse([]string{"0[-inf,inf]"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ExportValue(ShellTypeSh, "x", b, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	want := "X='0[-Inf,+Inf]'\nX_LOWER='-Inf'\nX_UPPER='+Inf'"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEnvName(t *testing.T) {
	cases := map[string]string{
		"len":       "LEN",
		"my-value":  "MY_VALUE",
		"a.b":       "A_B",
		"_x1":       "_X1",
		" spaced  ": "SPACED",
	}
	for in, want := range cases {
		got, err := envName(in)
		if err != nil || got != want {
			t.Fatalf("envName(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	for _, in := range []string{"", "1abc", "a b", "x$"} {
		if _, err := envName(in); err == nil {
			t.Fatalf("envName(%q): expected error", in)
		}
	}
}

func TestQuoteSh(t *testing.T) {
	if got := quoteSh("it's"); got != `'it'\''s'` {
		t.Fatalf("quoteSh = %s", got)
	}
	if got := quoteSh(""); got != "''" {
		t.Fatalf("quoteSh(\"\") = %s", got)
	}
}

// shValue returns the quoted value assigned to name in sh export output.
func shValue(t *testing.T, out, name string) string {
	t.Helper()
	prefix := name + "='"
	i := strings.Index("\n"+out, "\n"+prefix)
	if i < 0 {
		t.Fatalf("no assignment of %s in\n%s", name, out)
	}
	rest := out[i+len(prefix):]
	j := strings.IndexByte(rest, '\'')
	if j < 0 {
		t.Fatalf("unterminated value of %s in\n%s", name, out)
	}
	return rest[:j]
}

func TestExportValue_ParsesBack(t *testing.T) {
	b, err := bounded.Parse([]string{"2[1,3]", "3[2,4]", "-1.5", "0[-inf,inf]", "1e-3±2e-4"})
	if err != nil {
		t.Fatal(err)
	}

	for _, formats := range [][]string{{"comma"}, {"space"}, {"newline"}, {"json"}, {"comma", "newline"}} {
		t.Run(strings.Join(formats, "_"), func(t *testing.T) {
			out, err := ExportValue(ShellTypeSh, "x", b, formats, false)
			if err != nil {
				t.Fatalf("ExportValue: %v", err)
			}

			values, err := ParseMultiValues(formats, []string{shValue(t, out, "X")}, "X")
			if err != nil {
				t.Fatalf("ParseMultiValues: %v", err)
			}
			back, err := bounded.Parse(values)
			if err != nil {
				t.Fatalf("Parse(%q): %v", values, err)
			}
			if !back.Equal(b) {
				t.Fatalf("round trip = %v, want %v", back, b)
			}

			for _, row := range []struct {
				name string
				want []float64
			}{
				{"X_LOWER", b.Lower()},
				{"X_UPPER", b.Upper()},
			} {
				values, err := ParseMultiValues(formats, []string{shValue(t, out, row.name)}, row.name)
				if err != nil {
					t.Fatalf("ParseMultiValues(%s): %v", row.name, err)
				}
				got, err := bounded.Parse(values)
				if err != nil {
					t.Fatalf("Parse(%s %q): %v", row.name, values, err)
				}
				if diff := cmp.Diff(row.want, got.Central()); diff != "" {
					t.Fatalf("%s mismatch (-want +got):\n%s", row.name, diff)
				}
			}
		})
	}
}
