package tradereport

import (
	"encoding/json"
	"fmt"
)

// Position is the side of a closed position.
type Position int

const (
	Long Position = iota
	Short
)

func (p Position) String() string {
	switch p {
	case Long:
		return "long"
	case Short:
		return "short"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// ParsePosition parses "long" or "short".
func ParsePosition(s string) (Position, error) {
	switch s {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	default:
		return Long, fmt.Errorf("unknown position %q", s)
	}
}

func (p Position) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }
