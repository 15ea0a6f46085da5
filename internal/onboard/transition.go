package onboard

import "time"

// DashboardDelay is how long the summary shows its loading state before
// handing over to the Dashboard.
const DashboardDelay = 6000 * time.Millisecond

// TransitionState is the summary screen's confirm state.
type TransitionState int

const (
	Idle    TransitionState = iota // Back and Dashboard available
	Loading                        // busy indicator, no controls
)

func (s TransitionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	default:
		return "unknown"
	}
}

// Ticket identifies one scheduled Dashboard completion. The event loop
// delivers it back to Fire once Delay has passed.
type Ticket struct {
	ID       uint64
	Delay    time.Duration
	Deadline time.Time
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithDelay overrides DashboardDelay.
func WithDelay(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.delay = d
	}
}

// WithClock sets the time source used for deadlines.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

// Controller is the Idle/Loading state machine behind the summary screen's
// Back and Dashboard actions. It starts no goroutines: the caller schedules
// the returned Ticket and hands it to Fire when it is due. A Controller is
// not safe for concurrent use; it belongs to one event loop.
type Controller struct {
	state     TransitionState
	pending   *Ticket
	enteredAt time.Time
	seq       uint64
	closed    bool

	delay       time.Duration
	now         func() time.Time
	onBack      func()
	onDashboard func()
}

// NewController creates a Controller in the Idle state. Either callback may
// be nil.
func NewController(onBack, onDashboard func(), opts ...ControllerOption) *Controller {
	c := &Controller{
		delay:       DashboardDelay,
		now:         time.Now,
		onBack:      onBack,
		onDashboard: onDashboard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() TransitionState { return c.state }

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed }

// Pending returns the armed ticket, if any.
func (c *Controller) Pending() (Ticket, bool) {
	if c.pending == nil {
		return Ticket{}, false
	}
	return *c.pending, true
}

// Back invokes the back callback. It is only available while Idle.
func (c *Controller) Back() bool {
	if c.closed || c.state != Idle {
		return false
	}
	if c.onBack != nil {
		c.onBack()
	}
	return true
}

// Dashboard moves from Idle to Loading and arms a ticket for the deferred
// completion. While Loading the action is ignored and ok is false, so a
// double press never arms a second ticket.
func (c *Controller) Dashboard() (t Ticket, ok bool) {
	if c.closed || c.state == Loading {
		return Ticket{}, false
	}

	c.seq++
	c.state = Loading
	c.enteredAt = c.now()
	c.pending = &Ticket{
		ID:       c.seq,
		Delay:    c.delay,
		Deadline: c.enteredAt.Add(c.delay),
	}
	return *c.pending, true
}

// Fire delivers a due ticket. The dashboard callback runs only for the
// armed ticket, only once, never before its deadline and never after
// Close. The state stays Loading; the owner is expected to replace the
// screen.
func (c *Controller) Fire(t Ticket) bool {
	if c.closed || c.pending == nil || c.pending.ID != t.ID {
		return false
	}
	if c.now().Before(c.pending.Deadline) {
		return false
	}

	c.pending = nil
	if c.onDashboard != nil {
		c.onDashboard()
	}
	return true
}

// Elapsed returns how long the controller has been Loading, capped at the
// delay. It is zero while Idle.
func (c *Controller) Elapsed() time.Duration {
	if c.state != Loading {
		return 0
	}
	d := c.now().Sub(c.enteredAt)
	if d > c.delay {
		return c.delay
	}
	if d < 0 {
		return 0
	}
	return d
}

// Remaining returns the time left until the armed ticket is due, or zero
// when nothing is armed.
func (c *Controller) Remaining() time.Duration {
	if c.pending == nil {
		return 0
	}
	d := c.pending.Deadline.Sub(c.now())
	if d < 0 {
		return 0
	}
	return d
}

// Progress returns Elapsed as a fraction of the delay.
func (c *Controller) Progress() float64 {
	if c.delay <= 0 {
		if c.state == Loading {
			return 1
		}
		return 0
	}
	return float64(c.Elapsed()) / float64(c.delay)
}

// Close releases the pending completion. It is safe to call more than once
// and in either state. It reports whether a ticket was still armed.
func (c *Controller) Close() bool {
	hadPending := c.pending != nil
	c.pending = nil
	c.closed = true
	return hadPending
}
