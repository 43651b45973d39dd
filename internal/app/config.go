package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string // keystore directory, e.g. $HOME/.edbatch
}
