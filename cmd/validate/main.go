// Command validate checks a reference-data YAML file for gaps that the
// loader accepts but that would make some plates or weekdays unanswerable:
// unvalued consonants, missing lucky point buckets, overlapping groups and
// missing weekday advice. It finishes by running sample calculations.
//
// Usage:
//
//	go run ./cmd/validate -refdata tables.yaml
//
// Without -refdata the compiled-in tables are checked.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/naruebaet/thai-plate-prophecy/internal/domain"
	"github.com/naruebaet/thai-plate-prophecy/internal/refdata"
)

// samples are second parts combined with every consonant in the
// sample calculation phase.
var samples = []string{"0", "1", "9", "19", "99", "999", "9999"}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	path := flag.String("refdata", "", "path to a reference-data YAML file (default: compiled-in tables)")
	flag.Parse()

	os.Exit(run(*path, os.Stdout))
}

func run(path string, out io.Writer) int {
	fmt.Fprintln(out, "=== Reference Data Integrity Validation ===")
	fmt.Fprintln(out)

	source := path
	if source == "" {
		source = "compiled-in tables"
	}
	ref, err := refdata.Load(path)
	if err != nil {
		fmt.Fprintf(out, "FATAL: load %s: %v\n", source, err)
		return 1
	}
	fmt.Fprintf(out, "Source: %s\n\n", source)

	phases := []*phase{
		validateCharacterCoverage(ref),
		validateLuckyPoints(ref),
		validateGroups(ref),
		validateWeekdayCoverage(ref),
		validateSampleCalculations(ref),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Tables: %d characters, %d lucky points, %d groups, %d advice entries\n",
		len(ref.CharValues), len(ref.LuckyPoints), len(ref.LuckyPointGroups), len(ref.Advice))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// validateCharacterCoverage requires a value for every Thai consonant and
// reports entries that the plate validators can never reach.
func validateCharacterCoverage(ref *domain.ReferenceData) *phase {
	p := &phase{name: "Phase 1: Character coverage"}

	for ch := rune(0x0E01); ch <= 0x0E2E; ch++ {
		if _, ok := ref.CharValues[ch]; !ok {
			p.errorf("consonant %q (U+%04X) has no value", ch, ch)
		}
	}

	var unreachable []string
	for ch := range ref.CharValues {
		if !domain.IsThaiConsonant(ch) && !domain.IsDigit(ch) {
			unreachable = append(unreachable, string(ch))
		}
	}
	sort.Strings(unreachable)
	for _, s := range unreachable {
		p.errorf("character %q is not a consonant or digit and can never appear on a plate", s)
	}
	return p
}

// validateLuckyPoints requires exactly one entry per bucket 1..9.
func validateLuckyPoints(ref *domain.ReferenceData) *phase {
	p := &phase{name: "Phase 2: Lucky point buckets"}

	seen := make(map[int]int, 9)
	for _, lp := range ref.LuckyPoints {
		seen[lp.Point]++
	}
	for b := 1; b <= 9; b++ {
		switch seen[b] {
		case 0:
			p.errorf("bucket %d has no lucky point", b)
		case 1:
		default:
			p.errorf("bucket %d is defined %d times; only the first is used", b, seen[b])
		}
	}
	return p
}

// validateGroups reports totals claimed by more than one group. The first
// group wins at lookup time, so later claims are dead entries.
func validateGroups(ref *domain.ReferenceData) *phase {
	p := &phase{name: "Phase 3: Group overlaps"}

	owner := make(map[int]string)
	names := make(map[string]bool, len(ref.LuckyPointGroups))
	for _, g := range ref.LuckyPointGroups {
		if names[g.Group] {
			p.errorf("group %q is defined more than once", g.Group)
		}
		names[g.Group] = true

		for _, pt := range g.Points {
			if prev, ok := owner[pt]; ok {
				p.errorf("total %d is in %q and %q", pt, prev, g.Group)
				continue
			}
			owner[pt] = g.Group
		}
	}
	return p
}

// validateWeekdayCoverage requires advice for Sunday through Saturday and
// Wednesday night.
func validateWeekdayCoverage(ref *domain.ReferenceData) *phase {
	p := &phase{name: "Phase 4: Weekday coverage"}

	for d := domain.Sunday; d <= domain.WednesdayNight; d++ {
		if _, err := ref.LookupAdviceByWeekday(d); err != nil {
			p.errorf("%s (%d): %v", d, int(d), err)
		}
	}
	return p
}

// validateSampleCalculations computes every single-consonant plate against
// the sample second parts and checks the result is self-consistent.
func validateSampleCalculations(ref *domain.ReferenceData) *phase {
	p := &phase{name: "Phase 5: Sample calculations"}
	prophet := domain.NewProphet(ref)

	for ch := rune(0x0E01); ch <= 0x0E2E; ch++ {
		first := string(ch)
		for _, second := range samples {
			result, err := prophet.AdviceByPlateData(first, second)
			if err != nil {
				p.errorf("%s %s: %v", first, second, err)
				continue
			}

			raw, err := ref.SumOf(second)
			if err != nil {
				p.errorf("%s %s: %v", first, second, err)
				continue
			}
			if result.Total.Sum != result.FirstPart.Sum+raw {
				p.errorf("%s %s: total %d != %d + %d", first, second, result.Total.Sum, result.FirstPart.Sum, raw)
			}
			if result.SecondPart.LuckyPoint.Point != domain.LuckyBucket(raw) {
				p.errorf("%s %s: lucky point %d, want bucket %d",
					first, second, result.SecondPart.LuckyPoint.Point, domain.LuckyBucket(raw))
			}
		}
	}
	return p
}
