package turn

import (
	"fmt"
	"strings"
)

// Group is a faction whose members act before control passes on
type Group uint8

const (
	GroupPlayer Group = iota
	GroupEnemy
	GroupNeutral

	groupCount
)

// Next returns the successor in the fixed cycle Player → Enemy → Neutral → Player
func (g Group) Next() Group {
	return (g + 1) % groupCount
}

func (g Group) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupEnemy:
		return "enemy"
	case GroupNeutral:
		return "neutral"
	}
	return "unknown"
}

// ParseGroup resolves a group name
func ParseGroup(s string) (Group, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "player":
		return GroupPlayer, nil
	case "enemy":
		return GroupEnemy, nil
	case "neutral":
		return GroupNeutral, nil
	}
	return 0, fmt.Errorf("unknown turn group: %q", s)
}
