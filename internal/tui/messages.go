package tui

import (
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/guide"
)

type scanDoneMsg struct {
	result guide.Result
	err    error
}

type errMsg struct {
	err error
}
