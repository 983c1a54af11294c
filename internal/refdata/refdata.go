// Package refdata loads the reference tables used by the prophecy
// calculations. A default table set is compiled into the binary; a YAML file
// with the same layout can replace it at startup.
package refdata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/naruebaet/thai-plate-prophecy/internal/domain"
)

//go:embed tables.yaml
var defaultTables []byte

// file mirrors the YAML layout of a table set.
type file struct {
	Characters       map[string]int `yaml:"characters"`
	LuckyPoints      []luckyPoint   `yaml:"lucky_points"`
	LuckyPointGroups []luckyGroup   `yaml:"lucky_point_groups"`
	Advice           []advice       `yaml:"lucky_number_advice"`
}

type luckyPoint struct {
	Point int    `yaml:"point"`
	Desc  string `yaml:"desc"`
}

type luckyGroup struct {
	Group  string `yaml:"group"`
	Points []int  `yaml:"points"`
	Desc   string `yaml:"desc"`
}

type advice struct {
	Day           int      `yaml:"day"`
	LuckyNumDesc  string   `yaml:"lucky_num_desc"`
	LuckyNum      []int    `yaml:"lucky_num"`
	AvoidNumDesc  string   `yaml:"avoid_num_desc"`
	AvoidNum      []int    `yaml:"avoid_num"`
	AvoidCharDesc string   `yaml:"avoid_char_desc"`
	AvoidChar     []string `yaml:"avoid_char"`
}

// Default returns the compiled-in table set.
func Default() (*domain.ReferenceData, error) {
	ref, err := Parse(defaultTables)
	if err != nil {
		return nil, fmt.Errorf("default reference data: %w", err)
	}
	return ref, nil
}

// LoadFile reads a table set from a YAML file.
func LoadFile(path string) (*domain.ReferenceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	ref, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("reference data %s: %w", path, err)
	}
	return ref, nil
}

// Load returns the table set at path, or the default set when path is empty.
func Load(path string) (*domain.ReferenceData, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a YAML table set. Unknown keys are rejected.
func Parse(data []byte) (*domain.ReferenceData, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode reference data: empty document")
		}
		return nil, fmt.Errorf("decode reference data: %w", err)
	}

	ref, err := f.toDomain()
	if err != nil {
		return nil, err
	}
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("validate reference data: %w", err)
	}
	return ref, nil
}

func (f file) toDomain() (*domain.ReferenceData, error) {
	ref := &domain.ReferenceData{
		CharValues:       make(map[rune]int, len(f.Characters)),
		LuckyPoints:      make([]domain.LuckyPoint, 0, len(f.LuckyPoints)),
		LuckyPointGroups: make([]domain.LuckyPointGroup, 0, len(f.LuckyPointGroups)),
		Advice:           make([]domain.LuckyNumberAdvice, 0, len(f.Advice)),
	}

	for key, v := range f.Characters {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("character key %q must be a single character", key)
		}
		ch, _ := utf8.DecodeRuneInString(key)
		ref.CharValues[ch] = v
	}
	for _, lp := range f.LuckyPoints {
		ref.LuckyPoints = append(ref.LuckyPoints, domain.LuckyPoint{Point: lp.Point, Desc: lp.Desc})
	}
	for _, g := range f.LuckyPointGroups {
		ref.LuckyPointGroups = append(ref.LuckyPointGroups, domain.LuckyPointGroup{
			Group:  g.Group,
			Points: g.Points,
			Desc:   g.Desc,
		})
	}
	for _, a := range f.Advice {
		ref.Advice = append(ref.Advice, domain.LuckyNumberAdvice{
			Day:           domain.WeekDay(a.Day),
			LuckyNumDesc:  a.LuckyNumDesc,
			LuckyNum:      nonNilInts(a.LuckyNum),
			AvoidNumDesc:  a.AvoidNumDesc,
			AvoidNum:      nonNilInts(a.AvoidNum),
			AvoidCharDesc: a.AvoidCharDesc,
			AvoidChar:     nonNilStrings(a.AvoidChar),
		})
	}
	return ref, nil
}

// nonNilInts keeps empty lists serializing as [] rather than null.
func nonNilInts(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
