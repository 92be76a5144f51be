package watch

import "time"

// pollTickMsg drives the timing monitor's periodic position check and the
// header clock. One tick chain is alive per mounted watch screen.
type pollTickMsg time.Time
