package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrUnknownSortKey  = errors.New("unknown sort key")
)

// Strategy selects how files are mapped to category labels.
// The numeric values are the selectors shown to interactive users.
type Strategy int

const (
	StrategyExtension Strategy = iota + 1
	StrategyDate
	StrategyPattern
	StrategyManual
	StrategyAI
)

var strategyNames = map[Strategy]string{
	StrategyExtension: "extension",
	StrategyDate:      "date",
	StrategyPattern:   "pattern",
	StrategyManual:    "manual",
	StrategyAI:        "ai",
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return "strategy(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy accepts a selector digit ("1".."5") or a strategy name.
func ParseStrategy(v string) (Strategy, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if n, err := strconv.Atoi(v); err == nil {
		if s := Strategy(n); s.Valid() {
			return s, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, v)
	}
	for s, name := range strategyNames {
		if name == v {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, v)
}

// SortKey selects the order in which scanned files are processed and listed.
type SortKey int

const (
	SortByName SortKey = iota + 1
	SortByCreatedAt
	SortByModifiedAt
	SortBySizeAsc
	SortBySizeDesc
)

var sortKeyNames = map[SortKey]string{
	SortByName:       "name",
	SortByCreatedAt:  "created",
	SortByModifiedAt: "modified",
	SortBySizeAsc:    "size",
	SortBySizeDesc:   "size-desc",
}

func (k SortKey) String() string {
	if n, ok := sortKeyNames[k]; ok {
		return n
	}
	return "sortkey(" + strconv.Itoa(int(k)) + ")"
}

func (k SortKey) Valid() bool {
	_, ok := sortKeyNames[k]
	return ok
}

// ParseSortKey accepts a selector digit ("1".."5") or a key name.
// An empty value selects SortByName.
func ParseSortKey(v string) (SortKey, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return SortByName, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if k := SortKey(n); k.Valid() {
			return k, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownSortKey, v)
	}
	for k, name := range sortKeyNames {
		if name == v {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSortKey, v)
}
