package study

// chatEventMsg carries one streaming event from the assistant: a text
// chunk, or the final outcome when done is set.
type chatEventMsg struct {
	chunk string
	err   error
	done  bool
}
