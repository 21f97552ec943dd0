package configs

// Chat configures the conversational assistant. HistoryLimit caps the
// number of remembered entries per caller; RatePerSecond and RateBurst
// define the per-caller token bucket on the chat endpoint. A zero
// RatePerSecond disables limiting.
type Chat struct {
	HistoryLimit  int     `env:"HISTORY_LIMIT" envDefault:"20"`
	RatePerSecond float64 `env:"RATE_PER_SECOND" envDefault:"1"`
	RateBurst     int     `env:"RATE_BURST" envDefault:"5"`
}
