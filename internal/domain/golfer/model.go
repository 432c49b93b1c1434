package golfer

import "fmt"

// Golfer is a selectable player. Price feeds the squad budget check.
type Golfer struct {
	ID    string
	Name  string
	Club  string
	Price int64
}

func (g Golfer) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("golfer id is required")
	}
	if g.Name == "" {
		return fmt.Errorf("golfer name is required")
	}
	if g.Price < 0 {
		return fmt.Errorf("golfer price cannot be negative")
	}

	return nil
}
