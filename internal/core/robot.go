package core

// initialBodiesDiff is every robot's starting manipulator offsets, in
// the canonical "facing Right" frame. (0,0) — the robot's own cell — is
// always present.
var initialBodiesDiff = []Point{{0, 0}, {1, 0}, {1, 1}, {1, -1}}

// primaryNewBodies is the pre-seeded queue of manipulator offsets the
// first robot consumes (in order) as it picks up NewHand boosters.
// Grounded on original_source/src/solve.rs's State::initialize.
var primaryNewBodies = []Point{{-1, 0}, {-1, 1}, {-1, -1}, {0, -1}, {0, 1}}

// cloneNewBodies is the shorter queue a cloned robot starts with.
var cloneNewBodies = []Point{{-1, 0}, {-1, 1}}

// Robot is the single concrete robot type: behavior differences between
// "the first robot" and a clone come entirely from the contents of
// NewBodies and BodiesDiff, never from a distinct struct or kind tag.
type Robot struct {
	Place Place

	// BodiesDiff are this robot's manipulator offsets, canonical frame.
	BodiesDiff []Point

	// NewBodies are offsets queued to be attached (via NewHand) in order.
	NewBodies []Point

	// Commands is this robot's planned-but-not-yet-issued buffer, a
	// queue consumed from the front one command per turn; it holds
	// several moves at once when a single BFS call yields a longer path.
	Commands []Command

	// Executed is every command this robot has actually taken, in turn
	// order, one per turn starting with the first turn it acts on (for a
	// clone, the turn after its Cloning command). Robots that come after
	// the one completing coverage in a turn take no command on that
	// final turn.
	Executed []Command

	// Prefix is the parent's full rendered history (parent's own Prefix
	// plus parent's Executed) as of the turn this robot was cloned into
	// existence. Nil for the primary robot. Commands() prepends it so a
	// clone's rendered sequence stays aligned to the global turn count
	// instead of restarting at index 0.
	Prefix []Command
}

// NewPrimaryRobot creates the first robot of an attempt, standing at
// start facing Right with the default manipulator and pre-seeded queue.
func NewPrimaryRobot(start Point) *Robot {
	return &Robot{
		Place:      Place{Point: start, Direction: Right},
		BodiesDiff: append([]Point(nil), initialBodiesDiff...),
		NewBodies:  append([]Point(nil), primaryNewBodies...),
	}
}

// Clone creates a new robot at r's current place via a Cloning command:
// fresh manipulator, the shorter clone queue, and no history of its
// own. Its Prefix captures r's full history so far (r's own Prefix
// plus everything r has Executed), so the clone's rendered command
// sequence stays aligned to the global turn count it was born on.
func (r *Robot) Clone() *Robot {
	prefix := make([]Command, 0, len(r.Prefix)+len(r.Executed))
	prefix = append(prefix, r.Prefix...)
	prefix = append(prefix, r.Executed...)

	return &Robot{
		Place:      r.Place,
		BodiesDiff: append([]Point(nil), initialBodiesDiff...),
		NewBodies:  append([]Point(nil), cloneNewBodies...),
		Commands:   append([]Command(nil), r.Commands...),
		Prefix:     prefix,
	}
}

// Hands returns the grid cells this robot's manipulator currently
// covers (one per entry in BodiesDiff).
func (r *Robot) Hands() []Point {
	hands := make([]Point, len(r.BodiesDiff))
	for i, d := range r.BodiesDiff {
		hands[i] = r.Place.Hand(d)
	}
	return hands
}
