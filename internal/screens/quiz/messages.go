package quiz

import "time"

// upgradeTickMsg polls the round for a remote batch upgrade while the
// student is still on the first question.
type upgradeTickMsg time.Time
