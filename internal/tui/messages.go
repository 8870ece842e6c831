package tui

type copiedMsg struct {
	what string
}

type copyFailedMsg struct {
	err error
}

type generatedMsg struct {
	password string
	err      error
}
