package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ms-henglu/orgchart/internal/org"
)

var (
	ic = org.NewIndividualContributor
	mg = org.NewManager
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		root     org.Employee
		expected string
	}{
		{
			name:     "individual contributor",
			root:     ic("X"),
			expected: "+---+\n| X |\n+---+\n",
		},
		{
			name:     "manager without reports",
			root:     mg("X"),
			expected: "+---+\n| X |\n+---+\n",
		},
		{
			name:     "empty name",
			root:     ic(""),
			expected: "+--+\n|  |\n+--+\n",
		},
		{
			name: "single report",
			root: mg("Lars Littlebear", ic("Mandy Maalouf")),
			expected: strings.TrimLeft(`
+-----------------+
| Lars Littlebear |
+-----------------+
  |  +---------------+
  +--| Mandy Maalouf |
     +---------------+
`, "\n"),
		},
		{
			name: "two reports",
			root: mg("Betty Bian", ic("Konrad Kraikupt"), ic("Lars Littlebear")),
			expected: strings.TrimLeft(`
+------------+
| Betty Bian |
+------------+
  |  +-----------------+
  +--| Konrad Kraikupt |
  |  +-----------------+
  |  +-----------------+
  +--| Lars Littlebear |
     +-----------------+
`, "\n"),
		},
		{
			name: "last report with reports of its own",
			root: mg("Betty Bian",
				ic("Konrad Kraikupt"),
				mg("Lars Littlebear", ic("Mandy Maalouf")),
			),
			expected: strings.TrimLeft(`
+------------+
| Betty Bian |
+------------+
  |  +-----------------+
  +--| Konrad Kraikupt |
  |  +-----------------+
  |  +-----------------+
  +--| Lars Littlebear |
     +-----------------+
       |  +---------------+
       +--| Mandy Maalouf |
          +---------------+
`, "\n"),
		},
		{
			name: "sample organisation",
			root: org.Sample(),
			expected: strings.TrimLeft(`
+------------+
| Joko Jokic |
+------------+
  |  +-----------------+
  +--| Faisal Fabbiani |
  |  +-----------------+
  |  +------------------+
  +--| Girish Gadjinsky |
  |  +------------------+
  |    |  +----------------+
  |    +--| Arjun Acemoglu |
  |    |  +----------------+
  |    |  +------------+
  |    +--| Betty Bian |
  |    |  +------------+
  |    |    |  +-----------------+
  |    |    +--| Konrad Kraikupt |
  |    |    |  +-----------------+
  |    |    |  +-----------------+
  |    |    +--| Lars Littlebear |
  |    |       +-----------------+
  |    |         |  +---------------+
  |    |         +--| Mandy Maalouf |
  |    |            +---------------+
  |    |  +-------------+
  |    +--| Niara Naber |
  |       +-------------+
  |         |  +--------------+
  |         +--| Olga Omarosa |
  |         |  +--------------+
  |         |  +-------------------+
  |         +--| Petter Palanisamy |
  |         |  +-------------------+
  |         |  +----------------+
  |         +--| Qian Quasimodo |
  |            +----------------+
  |  +------------+
  +--| Harald Heß |
     +------------+
       |  +--------------+
       +--| Ciara Chukwu |
       |  +--------------+
       |  +------------+
       +--| Dian Dagar |
       |  +------------+
       |  +--------------+
       +--| Emmet Ergasi |
          +--------------+
`, "\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Render(tt.root)); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, ic("X"))
	if got := buf.String(); got != "+---+\n| X |\n+---+\n" {
		t.Errorf("Fprint() = %q", got)
	}
}

func TestBoxShape(t *testing.T) {
	for _, name := range []string{"A", "Betty Bian", "Petter Palanisamy", "Harald Heß"} {
		t.Run(name, func(t *testing.T) {
			lines := strings.Split(strings.TrimSuffix(Box(name, EmptyPrefix), "\n"), "\n")
			if len(lines) != 3 {
				t.Fatalf("Expected 3 lines, got %d", len(lines))
			}
			border := "+" + strings.Repeat("-", Width(name)+2) + "+"
			if lines[0] != border || lines[2] != border {
				t.Errorf("Borders = %q / %q, want %q", lines[0], lines[2], border)
			}
			if lines[1] != "| "+name+" |" {
				t.Errorf("Interior = %q", lines[1])
			}
		})
	}
}

func TestChildPrefix(t *testing.T) {
	parent := BoxPrefix{Top: "  |    |  ", Interior: "  |    +--", Bottom: "  |       "}

	tests := []struct {
		name        string
		hasSiblings bool
		expected    BoxPrefix
	}{
		{
			name:        "followed by siblings",
			hasSiblings: true,
			expected: BoxPrefix{
				Top:      "  |         |  ",
				Interior: "  |         +--",
				Bottom:   "  |         |  ",
			},
		},
		{
			name:        "last sibling",
			hasSiblings: false,
			expected: BoxPrefix{
				Top:      "  |         |  ",
				Interior: "  |         +--",
				Bottom:   "  |            ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, ChildPrefix(parent, tt.hasSiblings)); diff != "" {
				t.Errorf("ChildPrefix() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("root children", func(t *testing.T) {
		first := ChildPrefix(EmptyPrefix, true)
		last := ChildPrefix(EmptyPrefix, false)
		if first.Top != last.Top || first.Interior != last.Interior {
			t.Errorf("Siblings should share top and interior margins: %+v vs %+v", first, last)
		}
		if !strings.HasSuffix(first.Bottom, "|  ") {
			t.Errorf("Non-last bottom margin should continue the stem, got %q", first.Bottom)
		}
		if strings.Contains(last.Bottom, "|") {
			t.Errorf("Last bottom margin should be blank, got %q", last.Bottom)
		}
	})
}

func TestRenderWithPrefixShiftInvariance(t *testing.T) {
	subtree := mg("Betty Bian",
		ic("Konrad Kraikupt"),
		mg("Lars Littlebear", ic("Mandy Maalouf")),
	)

	prefixes := []BoxPrefix{
		ChildPrefix(EmptyPrefix, true),
		ChildPrefix(EmptyPrefix, false),
		ChildPrefix(ChildPrefix(EmptyPrefix, true), true),
		ChildPrefix(ChildPrefix(ChildPrefix(EmptyPrefix, false), true), false),
	}

	want := Render(subtree)
	for _, p := range prefixes {
		t.Run(p.Top, func(t *testing.T) {
			shifted := RenderWithPrefix(subtree, p)
			lines := strings.SplitAfter(shifted, "\n")
			var stripped strings.Builder
			for _, line := range lines {
				if line == "" {
					continue
				}
				if len(line) < len(p.Top) {
					t.Fatalf("Line %q is shorter than the prefix", line)
				}
				stripped.WriteString(line[len(p.Top):])
			}
			if diff := cmp.Diff(want, stripped.String()); diff != "" {
				t.Errorf("Stripped render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderWithPrefixEmbedded(t *testing.T) {
	girish := ChildPrefix(EmptyPrefix, true)
	betty := ChildPrefix(girish, true)

	got := RenderWithPrefix(mg("Betty Bian", ic("Konrad Kraikupt")), betty)
	expected := strings.TrimLeft(`
  |    |  +------------+
  |    +--| Betty Bian |
  |    |  +------------+
  |    |    |  +-----------------+
  |    |    +--| Konrad Kraikupt |
  |    |       +-----------------+
`, "\n")
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("RenderWithPrefix() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOrderPreserved(t *testing.T) {
	names := []string{"Zed", "Amy", "Moe", "Bea"}
	var reports []org.Employee
	for _, n := range names {
		reports = append(reports, ic(n))
	}

	got := Render(mg("Boss", reports...))
	last := -1
	for _, n := range names {
		idx := strings.Index(got, "| "+n+" |")
		if idx <= last {
			t.Fatalf("%s rendered out of order", n)
		}
		last = idx
	}
}

func TestRenderPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected Render to panic on a nil employee")
		}
	}()
	Render(nil)
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"", 0},
		{"Joko Jokic", 10},
		{"Harald Heß", 10},
		{"Zoe\u0301", 3},
		{"日本", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.name); got != tt.expected {
				t.Errorf("Width(%q) = %d, want %d", tt.name, got, tt.expected)
			}
		})
	}
}
