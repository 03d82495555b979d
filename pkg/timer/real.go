package timer

import "time"

// Real is the wall-clock Timer. Stop is a no-op.
var Real Timer = realTimer{}

type realTimer struct{}

func (realTimer) Now() time.Time { return time.Now() }
func (realTimer) Stop()          {}
