package geode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors for blueprint parsing.
var (
	ErrNoBlueprint         = errors.New("geode: no blueprint found")
	ErrIncompleteBlueprint = errors.New("geode: blueprint does not define all robots")
)

var (
	headerRe = regexp.MustCompile(`^Blueprint (\d+)(?::(.*))?$`)
	robotRe  = regexp.MustCompile(`Each (\w+) robot costs (\d+) (\w+)(?: and (\d+) (\w+))?\.`)
)

// Blueprint lists the build cost of every robot kind.
type Blueprint struct {
	ID    int
	Costs [NumKind]Resources
}

// Cost returns the cost of a robot of kind k.
func (b Blueprint) Cost(k Kind) Resources { return b.Costs[k] }

type blueprintBuilder struct {
	bp      Blueprint
	defined [NumKind]bool
	closed  bool // a non robot line ended the robot list
}

func (bb *blueprintBuilder) parseRobots(line string) (bool, error) {
	matches := robotRe.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return false, nil
	}
	for _, m := range matches {
		robot, err := ParseKind(m[1])
		if err != nil {
			return false, err
		}
		var cost Resources
		for i := 2; i+1 < len(m) && m[i] != ""; i += 2 {
			qty, err := strconv.Atoi(m[i])
			if err != nil {
				return false, fmt.Errorf("geode: blueprint %d: %w", bb.bp.ID, err)
			}
			res, err := ParseKind(m[i+1])
			if err != nil {
				return false, err
			}
			cost[res] += qty
		}
		bb.bp.Costs[robot] = cost
		bb.defined[robot] = true
	}
	return true, nil
}

func (bb *blueprintBuilder) build() (Blueprint, error) {
	for k, ok := range bb.defined {
		if !ok {
			return Blueprint{}, fmt.Errorf("%w: blueprint %d has no %s robot", ErrIncompleteBlueprint, bb.bp.ID, Kind(k))
		}
	}
	return bb.bp, nil
}

// ParseBlueprints reads all blueprints from r. A blueprint starts with a
// "Blueprint <n>:" line; its robot sentences follow on the same line or on the
// next lines and end at the first line without one.
func ParseBlueprints(r io.Reader) ([]Blueprint, error) {
	var blueprints []Blueprint
	var bb *blueprintBuilder

	flush := func() error {
		if bb == nil {
			return nil
		}
		bp, err := bb.build()
		if err != nil {
			return err
		}
		blueprints = append(blueprints, bp)
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := headerRe.FindStringSubmatch(line); m != nil {
			if err := flush(); err != nil {
				return nil, err
			}
			id, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("geode: blueprint id %q: %w", m[1], err)
			}
			bb = &blueprintBuilder{bp: Blueprint{ID: id}}
			if rest := strings.TrimSpace(m[2]); rest != "" {
				ok, err := bb.parseRobots(rest)
				if err != nil {
					return nil, err
				}
				bb.closed = !ok
			}
			continue
		}

		if bb == nil || bb.closed {
			continue
		}
		ok, err := bb.parseRobots(line)
		if err != nil {
			return nil, err
		}
		bb.closed = !ok
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("geode: read blueprints: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(blueprints) == 0 {
		return nil, ErrNoBlueprint
	}
	return blueprints, nil
}
