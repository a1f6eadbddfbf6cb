package main

// Exit codes for paymap CLI.
const (
	ExitOK          = 0 // Map generated successfully.
	ExitInvalidArgs = 1 // Invalid arguments or unknown format.
	ExitDataFailure = 2 // Input unreadable or output unwritable.
)
