package core

import "strings"

// Task is one grid-coverage problem instance: a room polygon with
// obstacles carved out, an initial robot point, and floor boosters.
// Width and height are derived from the room map's vertex extent.
type Task struct {
	ID        string
	Width     int
	Height    int
	Room      Map
	Initial   Point
	Obstacles []Map
	Boosters  []Booster
}

// NewTask derives Width/Height from room and wraps the remaining fields.
func NewTask(id string, room Map, initial Point, obstacles []Map, boosters []Booster) Task {
	return Task{
		ID:        id,
		Width:     room.ComputeWidth(),
		Height:    room.ComputeHeight(),
		Room:      room,
		Initial:   initial,
		Obstacles: obstacles,
		Boosters:  boosters,
	}
}

func (t Task) String() string {
	var b strings.Builder
	b.WriteString(t.Room.String())
	b.WriteByte('#')
	b.WriteString(pointString(t.Initial))
	b.WriteByte('#')
	obs := make([]string, len(t.Obstacles))
	for i, o := range t.Obstacles {
		obs[i] = o.String()
	}
	b.WriteString(strings.Join(obs, ";"))
	b.WriteByte('#')
	boosters := make([]string, len(t.Boosters))
	for i, bo := range t.Boosters {
		boosters[i] = bo.String()
	}
	b.WriteString(strings.Join(boosters, ";"))
	return b.String()
}
